package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"freight-auction/utils"
)

// Config carries the runtime settings of the service.
type Config struct {
	Port          string
	GinMode       string
	CycleInterval time.Duration
	CycleTimeout  time.Duration
	CycleWorkers  int
}

// Load reads configuration from a .env file if present, then from the
// environment, falling back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("No .env file found, relying on environment variables", nil)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "release"),
		CycleInterval: getDuration("CYCLE_INTERVAL", time.Minute),
		CycleTimeout:  getDuration("CYCLE_TIMEOUT", 45*time.Second),
		CycleWorkers:  getInt("CYCLE_WORKERS", 4),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		utils.Warn("Invalid duration in environment, using default", map[string]any{
			"key":     key,
			"value":   value,
			"default": defaultValue.String(),
		})
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		utils.Warn("Invalid integer in environment, using default", map[string]any{
			"key":     key,
			"value":   value,
			"default": defaultValue,
		})
		return defaultValue
	}
	return n
}
