package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AppMetrics holds the application's Prometheus collectors. All record
// methods are nil-safe so tests can run without a registry.
type AppMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	todoOperations  *prometheus.CounterVec
	userOperations  *prometheus.CounterVec
	rateLimitHits   *prometheus.CounterVec
}

func NewAppMetrics(registry prometheus.Registerer) *AppMetrics {
	metrics := &AppMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		todoOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "todo_operations_total",
				Help: "Total number of todo operations",
			},
			[]string{"operation", "status"},
		),
		userOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_operations_total",
				Help: "Total number of user operations",
			},
			[]string{"operation", "status"},
		),
		rateLimitHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_limit_hits_total",
				Help: "Total number of rate limited requests",
			},
			[]string{"endpoint"},
		),
	}

	registry.MustRegister(
		metrics.requestDuration,
		metrics.requestTotal,
		metrics.todoOperations,
		metrics.userOperations,
		metrics.rateLimitHits,
	)

	return metrics
}

func (m *AppMetrics) RecordRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}

	m.requestTotal.WithLabelValues(method, path, status).Inc()
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func (m *AppMetrics) RecordTodoOperation(operation, status string) {
	if m == nil {
		return
	}

	m.todoOperations.WithLabelValues(operation, status).Inc()
}

func (m *AppMetrics) RecordUserOperation(operation, status string) {
	if m == nil {
		return
	}

	m.userOperations.WithLabelValues(operation, status).Inc()
}

func (m *AppMetrics) RecordRateLimitHit(endpoint string) {
	if m == nil {
		return
	}

	m.rateLimitHits.WithLabelValues(endpoint).Inc()
}
