// Package metrics exposes Prometheus collectors for assistant exchanges.
//
// Metrics (namespace "review_assistant"):
//
//	exchanges_total{kind,outcome}          counter
//	exchange_duration_seconds{kind}        histogram
//	exchanges_inflight{kind}               gauge
//	run_polls{status}                      histogram of status checks per run
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sevigo/review-assistant/internal/core"
)

const namespace = "review_assistant"

// Metrics holds the collectors and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	exchanges *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	inflight  *prometheus.GaugeVec
	runPolls  *prometheus.HistogramVec
}

// New registers all collectors, plus the Go runtime and process collectors,
// with registry.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		exchanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exchanges_total",
			Help:      "Assistant exchanges by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "exchange_duration_seconds",
			Help:      "Wall time of a full exchange, thread creation to reply.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120, 180, 300},
		}, []string{"kind"}),
		inflight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exchanges_inflight",
			Help:      "Exchanges currently waiting on the assistant service.",
		}, []string{"kind"}),
		runPolls: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_polls",
			Help:      "Run status checks issued before a terminal state, by final status.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"status"}),
	}
}

// ExchangeStarted marks one exchange in flight and returns the func that
// records its outcome.
func (m *Metrics) ExchangeStarted(kind core.AssistantKind) func(outcome string) {
	if m == nil {
		return func(string) {}
	}
	start := time.Now()
	m.inflight.WithLabelValues(string(kind)).Inc()
	return func(outcome string) {
		m.inflight.WithLabelValues(string(kind)).Dec()
		m.exchanges.WithLabelValues(string(kind), outcome).Inc()
		m.duration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}
}

// ObserveRun records how many status checks a run needed.
func (m *Metrics) ObserveRun(status core.RunStatus, polls int) {
	if m == nil {
		return
	}
	m.runPolls.WithLabelValues(string(status)).Observe(float64(polls))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
