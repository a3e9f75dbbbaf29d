// Package metrics defines the Prometheus instruments exported on /metrics.
// promauto registers everything against the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts processed HTTP requests by method, path and
	// status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geomigrate_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures server response time per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geomigrate_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// ValidationRunsTotal counts validation runs by outcome ("valid" or
	// "violations").
	ValidationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geomigrate_validation_runs_total",
			Help: "Total number of validation runs",
		},
		[]string{"outcome"},
	)

	// ViolationsTotal counts individual findings by kind
	// ("duplicate_timestamp" or "illegal_transition").
	ViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geomigrate_violations_total",
			Help: "Total number of violations detected",
		},
		[]string{"kind"},
	)
)
