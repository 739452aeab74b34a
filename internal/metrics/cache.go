package metrics

import "github.com/prometheus/client_golang/prometheus"

// Result cache and feature outcome Prometheus metrics.
var (
	ResultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "navigator",
			Name:      "result_cache_total",
			Help:      "Result cache hits and misses",
		},
		[]string{"feature", "result"}, // "hit" / "miss"
	)

	ResultCacheErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "navigator",
			Name:      "result_cache_errors_total",
			Help:      "Result cache store errors",
		},
		[]string{"op"},
	)

	ResultCacheAvailable = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "navigator",
			Name:      "result_cache_available",
			Help:      "1 when the result cache store is reachable, 0 during an outage",
		},
	)

	FeatureOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "navigator",
			Name:      "feature_outcomes_total",
			Help:      "Computed feature results by outcome",
		},
		[]string{"feature", "outcome"},
	)

	FeatureComputeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "navigator",
			Name:      "feature_compute_duration_seconds",
			Help:      "Time spent computing a feature result on cache miss",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"feature"},
	)
)

var cacheMetricsRegistered bool

// RegisterCacheMetrics registers result cache and outcome metrics. Must be called once from main.
func RegisterCacheMetrics() {
	if cacheMetricsRegistered {
		return
	}
	prometheus.MustRegister(ResultCacheTotal)
	prometheus.MustRegister(ResultCacheErrorsTotal)
	prometheus.MustRegister(ResultCacheAvailable)
	prometheus.MustRegister(FeatureOutcomesTotal)
	prometheus.MustRegister(FeatureComputeDuration)
	ResultCacheAvailable.Set(1)
	cacheMetricsRegistered = true
}
