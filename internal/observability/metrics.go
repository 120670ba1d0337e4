// Package observability provides Prometheus metrics and health checks for
// the auctions API.
//
// Metrics are registered on an explicit registry handed in by the caller,
// so tests and multiple servers in one process never share state.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the HTTP API.
//
// Key metrics for monitoring:
//   - http_requests_total: request rate by method, route and status
//   - http_request_duration_seconds: latency distribution (same value as X-Process-Time)
//   - http_requests_in_flight: open request contexts
//   - domain_failures_total: translated failures by kind
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RequestsInFlight    prometheus.Gauge
	DomainFailures      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates all metrics and registers them on reg.
// The namespace prefixes all metric names (e.g. "auctions_http_requests_total").
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		RequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of requests with an open request context",
		}),
		DomainFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_failures_total",
			Help:      "Total number of failures translated into HTTP responses, by kind",
		}, []string{"kind"}),
		gatherer: reg,
	}
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
