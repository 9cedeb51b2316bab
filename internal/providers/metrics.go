package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "statusgarden"

var (
	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "fetch_duration_seconds",
			Help:      "Time to fetch and normalize one provider",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "adapter"},
	)

	fetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "fetch_failures_total",
			Help:      "Hard fetch failures converted to fallback records",
		},
		[]string{"provider", "adapter"},
	)
)

// recordFetch records the duration of one adapter fetch.
func recordFetch(provider, adapter string, duration time.Duration) {
	fetchDuration.WithLabelValues(provider, adapter).Observe(duration.Seconds())
}

// recordFetchFailure records a hard failure for a provider.
func recordFetchFailure(provider, adapter string) {
	fetchFailures.WithLabelValues(provider, adapter).Inc()
}
