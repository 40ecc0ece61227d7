package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Global metrics instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Search metrics
	SearchesTotal     prometheus.Counter
	SearchesNoResults prometheus.Counter

	// Path request metrics
	PathRequestsTotal   prometheus.Counter
	PathRequestFailures prometheus.Counter
	StalePathResponses  prometheus.Counter

	// Remote graph service metrics
	RemoteCalls    *prometheus.CounterVec
	RemoteDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	searchesTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of confirmed searches",
		},
	)

	searchesNoResults := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_no_results_total",
			Help:      "Total number of confirmed searches with zero matches",
		},
	)

	pathRequestsTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_requests_total",
			Help:      "Total number of learning path requests issued",
		},
	)

	pathRequestFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_request_failures_total",
			Help:      "Total number of failed learning path requests",
		},
	)

	stalePathResponses := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_path_responses_total",
			Help:      "Total number of superseded path responses discarded",
		},
	)

	remoteCalls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_calls_total",
			Help:      "Total number of calls to the remote graph service",
		},
		[]string{"operation", "status"},
	)

	remoteDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_call_duration_seconds",
			Help:      "Remote graph service call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		searchesTotal,
		searchesNoResults,
		pathRequestsTotal,
		pathRequestFailures,
		stalePathResponses,
		remoteCalls,
		remoteDuration,
	)

	globalCollector = &Collector{
		registry:            registry,
		HTTPRequests:        httpRequests,
		HTTPDuration:        httpDuration,
		SearchesTotal:       searchesTotal,
		SearchesNoResults:   searchesNoResults,
		PathRequestsTotal:   pathRequestsTotal,
		PathRequestFailures: pathRequestFailures,
		StalePathResponses:  stalePathResponses,
		RemoteCalls:         remoteCalls,
		RemoteDuration:      remoteDuration,
	}

	return globalCollector
}

// Registry returns the Prometheus registry backing this collector
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
