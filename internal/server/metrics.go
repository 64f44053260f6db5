package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace          = "jsonvalidator"
	metricsSubSystemHTTP      = "http"
	metricsSubSystemValidator = "validator"
)

// Metrics holds the Prometheus instruments for the server. Each server owns
// its own registry so tests can build servers side by side.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	Verdicts        *prometheus.CounterVec
	Timeouts        prometheus.Counter
}

// NewMetrics creates and registers all server metrics.
func NewMetrics() *Metrics {
	var m Metrics
	m.registry = prometheus.NewRegistry()

	m.RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemHTTP,
		Name:      "requests_total",
		Help:      "The total number of HTTP requests served.",
	},
		[]string{"path", "method", "status_code"})
	m.registry.MustRegister(m.RequestsTotal)

	m.RequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemHTTP,
		Name:      "request_duration_seconds",
		Help:      "The time taken to serve HTTP requests.",
	})
	m.registry.MustRegister(m.RequestDuration)

	m.Verdicts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemValidator,
		Name:      "verdicts_total",
		Help:      "The total number of validation verdicts by outcome.",
	},
		[]string{"outcome"})
	m.registry.MustRegister(m.Verdicts)

	m.Timeouts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemValidator,
		Name:      "timeouts_total",
		Help:      "The total number of validator runs killed on timeout.",
	})
	m.registry.MustRegister(m.Timeouts)

	return &m
}

// Handler returns the /metrics exposition handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
