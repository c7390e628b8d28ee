package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationLatency records generation-API round-trip latency per persona.
	GenerationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paulgram_generation_latency_seconds",
		Help:    "Generation API round-trip latency in seconds",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"surface"})

	// GenerationFailures counts failed generation-API calls by surface.
	GenerationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paulgram_generation_failures_total",
		Help: "Total number of failed generation API calls",
	}, []string{"surface"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paulgram_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// ObserveGeneration records one generation call's outcome for the given
// surface ("comment" or "chat").
func ObserveGeneration(surface string, start time.Time, err error) {
	GenerationLatency.WithLabelValues(surface).Observe(time.Since(start).Seconds())
	if err != nil {
		GenerationFailures.WithLabelValues(surface).Inc()
	}
}
