// Package metrics holds the Prometheus collectors for the train line API.
// Collectors are registered on a private registry so tests can build as
// many instances as they like without clashing on the default registerer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trainline"

// Metrics is the set of collectors exported at /metrics.
type Metrics struct {
	Requests         *prometheus.CounterVec
	Latency          *prometheus.HistogramVec
	StationsAppended prometheus.Counter

	registry *prometheus.Registry
}

// New builds and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StationsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stations_appended_total",
			Help:      "Stations successfully appended to any line.",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(m.Requests, m.Latency, m.StationsAppended)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
