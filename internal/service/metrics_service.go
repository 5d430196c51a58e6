package service

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for outgoing API
// calls and for requests served by the mock backend.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	clientDuration  *prometheus.HistogramVec
	clientTotal     *prometheus.CounterVec
	clientFailures  *prometheus.CounterVec
	serverDuration  *prometheus.HistogramVec
	serverTotal     *prometheus.CounterVec
	clientCallCount uint64
}

// MetricsSnapshot is a cheap summary used by the CLI.
type MetricsSnapshot struct {
	ClientCalls uint64 `json:"clientCalls"`
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	clientDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "unigov_client_request_duration_seconds",
		Help:    "Duration of UniGov API calls in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	clientTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "unigov_client_requests_total",
		Help: "Total number of UniGov API calls",
	}, []string{"method", "path", "status"})

	clientFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "unigov_client_request_failures_total",
		Help: "UniGov API calls that failed at the transport level or returned a non-2xx status",
	}, []string{"method", "path"})

	serverDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests served by the mock backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	serverTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests served by the mock backend",
	}, []string{"method", "path", "status"})

	registry.MustRegister(clientDuration, clientTotal, clientFailures, serverDuration, serverTotal)

	return &MetricsService{
		registry:       registry,
		handler:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		clientDuration: clientDuration,
		clientTotal:    clientTotal,
		clientFailures: clientFailures,
		serverDuration: serverDuration,
		serverTotal:    serverTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry exposes the underlying registry for gathering in tests and tooling.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveAPICall records one outgoing call. A zero status marks a transport failure.
func (m *MetricsService) ObserveAPICall(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	label := fmt.Sprintf("%d", status)
	m.clientDuration.WithLabelValues(method, path, label).Observe(duration.Seconds())
	m.clientTotal.WithLabelValues(method, path, label).Inc()
	if status == 0 || status >= 400 {
		m.clientFailures.WithLabelValues(method, path).Inc()
	}
	atomic.AddUint64(&m.clientCallCount, 1)
}

// ObserveHTTPRequest records a request served by the mock backend.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	label := fmt.Sprintf("%d", status)
	m.serverDuration.WithLabelValues(method, path, label).Observe(duration.Seconds())
	m.serverTotal.WithLabelValues(method, path, label).Inc()
}

// Snapshot returns aggregate counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{ClientCalls: atomic.LoadUint64(&m.clientCallCount)}
}
