package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Application metrics for the difficulty update cycle. Registered with the
// metrics server's registry at startup.
var (
	// DifficultyUpdatesTotal counts completed update cycles by resulting tier.
	DifficultyUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dynamic_difficulty_updates_total",
			Help: "Total number of difficulty update cycles",
		},
		[]string{"level"},
	)

	// ModifierContribution observes the signed contribution each modifier
	// produced during an update cycle.
	ModifierContribution = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dynamic_difficulty_modifier_contribution",
			Help:    "Signed difficulty contribution per modifier",
			Buckets: prometheus.LinearBuckets(-5, 0.5, 21),
		},
		[]string{"modifier"},
	)

	// DifficultyChange observes the applied net change per update cycle,
	// after capping and clamping.
	DifficultyChange = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dynamic_difficulty_applied_change",
			Help:    "Net difficulty change applied per update cycle",
			Buckets: prometheus.LinearBuckets(-5, 0.5, 21),
		},
	)
)

// Register registers all application metrics with the given registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		DifficultyUpdatesTotal,
		ModifierContribution,
		DifficultyChange,
	)
}
