package batch

import "github.com/prometheus/client_golang/prometheus"

var (
	batchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insnav_batch_conversions_total",
			Help: "Total number of batch conversions completed.",
		},
		[]string{"direction"},
	)

	pointsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insnav_batch_points_total",
			Help: "Total number of points converted.",
		},
		[]string{"direction"},
	)

	nonFinitePointsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "insnav_batch_nonfinite_points_total",
			Help: "Input points with NaN or Inf components.",
		},
	)

	batchDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insnav_batch_duration_seconds",
			Help:    "Batch conversion duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"direction"},
	)
)

func init() {
	prometheus.MustRegister(batchesTotal)
	prometheus.MustRegister(pointsTotal)
	prometheus.MustRegister(nonFinitePointsTotal)
	prometheus.MustRegister(batchDurationSeconds)
}

// recordBatch updates all batch metrics for one completed conversion.
func recordBatch(direction string, points, nonFinite int, seconds float64) {
	batchesTotal.WithLabelValues(direction).Inc()
	pointsTotal.WithLabelValues(direction).Add(float64(points))
	if nonFinite > 0 {
		nonFinitePointsTotal.Add(float64(nonFinite))
	}
	batchDurationSeconds.WithLabelValues(direction).Observe(seconds)
}
