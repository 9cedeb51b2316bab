package aggregator

import (
	"time"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "statusgarden"

var (
	cycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "cycle_duration_seconds",
			Help:      "Time to fetch and normalize all providers in one cycle",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	degradedProviders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "degraded_providers",
			Help:      "Providers that returned a fallback record in the last cycle",
		},
	)

	providerSeverity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "provider_severity_rank",
			Help:      "Current severity per provider (0 none, 1 maintenance, 2 minor, 3 major)",
		},
		[]string{"provider"},
	)
)

// recordCycle records one completed poll cycle.
func recordCycle(duration time.Duration, degraded int) {
	cycleDuration.Observe(duration.Seconds())
	degradedProviders.Set(float64(degraded))
}

// recordProviderSeverity updates the severity gauge for a provider.
func recordProviderSeverity(provider string, severity domain.Severity) {
	providerSeverity.WithLabelValues(provider).Set(float64(severity.Rank()))
}
