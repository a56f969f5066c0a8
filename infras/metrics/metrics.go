package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "pakt_"

	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics bundles the service metrics and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	SignaturesIssued       prometheus.Counter
	SignatureVerifications *prometheus.CounterVec
	PreferenceWrites       *prometheus.CounterVec
	RequestDuration        *prometheus.HistogramVec
}

// New constructs and registers metrics on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SignaturesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "signatures_issued_total",
			Help: "Total request signatures issued",
		}),
		SignatureVerifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "signature_verifications_total",
				Help: "Total signature verifications by result",
			},
			[]string{"result"},
		),
		PreferenceWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "timezone_preference_writes_total",
				Help: "Total timezone preference writes by result",
			},
			[]string{"result"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.SignaturesIssued,
		m.SignatureVerifications,
		m.PreferenceWrites,
		m.RequestDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}

	return ResultSuccess
}
