// Package metrics exposes Prometheus collectors for the voice backend.
// Collectors live on their own registry, created once at startup.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "trendcurator"
	subsystem = "skill"
)

// Collectors groups every metric the service records.
type Collectors struct {
	registry *prometheus.Registry

	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	QuotaRefusalsTotal prometheus.Counter
	HistoryConflicts   prometheus.Counter
	IntentsTotal       *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry, together
// with the Go runtime and process collectors.
func New() *Collectors {
	c := &Collectors{
		registry: prometheus.NewRegistry(),

		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "generations_total",
				Help:      "Generation calls by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "generation_duration_seconds",
				Help:      "Generation call latency in seconds",
				Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16},
			},
			[]string{"kind"},
		),

		QuotaRefusalsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "quota_refusals_total",
			Help:      "Requests refused because the monthly quota was exhausted",
		}),

		HistoryConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "history_conflicts_total",
			Help:      "Optimistic history writes that lost a race and were retried",
		}),

		IntentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "intents_total",
				Help:      "Voice requests by intent name",
			},
			[]string{"intent"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.GenerationsTotal,
		c.GenerationDuration,
		c.QuotaRefusalsTotal,
		c.HistoryConflicts,
		c.IntentsTotal,
	)
	return c
}

// ObserveGeneration records one generation call.
func (c *Collectors) ObserveGeneration(kind, outcome string, elapsed time.Duration) {
	c.GenerationsTotal.WithLabelValues(kind, outcome).Inc()
	c.GenerationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// QuotaRefused records a refusal at the usage gate.
func (c *Collectors) QuotaRefused() {
	c.QuotaRefusalsTotal.Inc()
}

// HistoryConflict records a lost optimistic history write.
func (c *Collectors) HistoryConflict() {
	c.HistoryConflicts.Inc()
}

// Intent records one dispatched voice request.
func (c *Collectors) Intent(name string) {
	c.IntentsTotal.WithLabelValues(name).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
