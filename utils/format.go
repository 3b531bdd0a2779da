package utils

import "fmt"

// FormatMoney renders an amount in cents as a dollar string, e.g. 450 -> "$4.50"
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
