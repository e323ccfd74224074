package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Session Metrics
	SessionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "screen_time_session_operations_total",
			Help: "Total number of screen time session operations",
		},
		[]string{"operation"}, // create, delete
	)

	// Achievement Metrics
	AchievementEvaluationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "achievement_evaluations_total",
			Help: "Total number of achievement catalogue evaluations",
		},
	)

	// Cache Metrics
	StatsCacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_cache_operations_total",
			Help: "Stats cache operations by outcome",
		},
		[]string{"operation"}, // hit, miss, set, invalidate, error
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type and cause",
		},
		[]string{"type", "cause"},
	)

	// System Metrics
	CPUUsagePercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Current process host CPU usage",
		},
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackSessionOperation increments the session operation counter
func TrackSessionOperation(operation string) {
	SessionOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackAchievementEvaluation counts one full catalogue evaluation
func TrackAchievementEvaluation() {
	AchievementEvaluationsTotal.Inc()
}

// TrackCacheOperation records a stats cache outcome
func TrackCacheOperation(operation string) {
	StatsCacheOperations.WithLabelValues(operation).Inc()
}

// TrackError increments the error counter by type and cause
func TrackError(errorType, cause string) {
	ErrorsTotal.WithLabelValues(errorType, cause).Inc()
}
