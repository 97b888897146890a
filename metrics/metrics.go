package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled requests by method, route and status code.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "solcraft_http_requests_total",
		Help: "Handled HTTP requests.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration observes request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "solcraft_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// StoreAcquireTotal counts connection-candidate attempts by outcome.
var StoreAcquireTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "solcraft_store_acquire_total",
		Help: "Database connection candidate attempts.",
	},
	[]string{"candidate", "outcome"},
)

// FallbackServedTotal counts read responses served from the fallback dataset.
var FallbackServedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "solcraft_fallback_served_total",
		Help: "Read responses served from fallback data.",
	},
)
