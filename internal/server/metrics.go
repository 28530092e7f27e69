// Package server exposes the optional HTTP endpoint serving Prometheus
// metrics and a health probe for long prime generation runs.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry backing the /metrics endpoint.
type Metrics struct {
	registry       *prometheus.Registry
	handler        http.Handler
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
}

// NewMetrics creates a registry preloaded with Go runtime collectors and
// the HTTP server's own request instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "primegen_active_requests",
			Help: "HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primegen_requests_total",
			Help: "HTTP requests served by path.",
		}, []string{"path"}),
	}
	registry.MustRegister(m.activeRequests, m.requestsTotal)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Registry returns the underlying registerer so other components can
// attach their own instruments to the same endpoint.
func (m *Metrics) Registry() prometheus.Registerer {
	return m.registry
}

// IncrementActiveRequests marks a request in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks a request finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest records a served request for the given path.
func (m *Metrics) CountRequest(path string) {
	m.requestsTotal.WithLabelValues(path).Inc()
}

// WritePrometheus renders the registry in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
