package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the notification pipeline and scheduler.
var (
	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Notifications recorded and delivered, by kind",
		},
		[]string{"kind"},
	)

	NotificationsSuppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_suppressed_total",
			Help: "Notifications suppressed by the dedup cooldown, by kind",
		},
		[]string{"kind"},
	)

	EvaluationCycles = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "evaluation_cycles_total",
			Help: "Trigger evaluation cycles started",
		},
	)

	CycleCategoryFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cycle_category_failures_total",
			Help: "Trigger categories that failed within a cycle, by kind",
		},
		[]string{"kind"},
	)

	BidsPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bids_placed_total",
			Help: "Carrier bids accepted",
		},
	)

	AuctionsAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auctions_awarded_total",
			Help: "Auctions awarded to a winner",
		},
	)
)

func init() {
	prometheus.MustRegister(
		NotificationsSent,
		NotificationsSuppressed,
		EvaluationCycles,
		CycleCategoryFailures,
		BidsPlaced,
		AuctionsAwarded,
	)
}
