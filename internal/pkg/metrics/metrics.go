package metrics

import (
	"hospital-records-service/internal/pkg/constvars"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Patients
	PatientOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patient_operations_total",
			Help: "Total number of patient operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	PatientCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "patient_cache_hits_total",
			Help: "Total number of patient lookups served from Redis",
		},
	)

	PatientCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "patient_cache_misses_total",
			Help: "Total number of patient lookups that fell through to MongoDB",
		},
	)
)

// RecordAPIRequest uses the chi route pattern, not the raw path, so ids do not
// explode label cardinality.
func RecordAPIRequest(method, route string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordPatientOperation(operation string, err error) {
	outcome := constvars.OutcomeSuccess
	if err != nil {
		outcome = constvars.OutcomeFailure
	}
	PatientOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordPatientCacheLookup(hit bool) {
	if hit {
		PatientCacheHits.Inc()
		return
	}
	PatientCacheMisses.Inc()
}
