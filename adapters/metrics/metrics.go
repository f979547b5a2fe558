// Package metrics provides Prometheus metrics collection for Offerview.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds all Prometheus metrics for Offerview.
type Collector struct {
	// Render metrics
	RenderPasses    *prometheus.CounterVec
	ModulesRendered *prometheus.CounterVec
	ModulesSkipped  *prometheus.CounterVec
	RenderDuration  prometheus.Histogram

	// Registry metrics
	DefinitionCount   prometheus.Gauge
	RegistryMutations *prometheus.CounterVec

	// Persistence metrics
	PersistTotal    prometheus.Counter
	PersistErrors   prometheus.Counter
	LoadDuration    prometheus.Histogram
	OverridesLoaded prometheus.Gauge
}

// New creates a metrics collector registered on its own registry, so
// tests can create collectors without duplicate-registration panics.
func New() (*Collector, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	c := &Collector{
		RenderPasses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "offerview",
				Name:      "render_passes_total",
				Help:      "Total render passes by category and mode",
			},
			[]string{"category", "mode"},
		),
		ModulesRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "offerview",
				Name:      "modules_rendered_total",
				Help:      "Total module containers emitted",
			},
			[]string{"module"},
		),
		ModulesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "offerview",
				Name:      "modules_skipped_total",
				Help:      "Total module instances dropped during render",
			},
			[]string{"module", "reason"},
		),
		RenderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "offerview",
				Name:      "render_duration_seconds",
				Help:      "Render pass duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
		),
		DefinitionCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "offerview",
				Name:      "service_definitions",
				Help:      "Current number of stored service definitions",
			},
		),
		RegistryMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "offerview",
				Name:      "registry_mutations_total",
				Help:      "Registry mutations by kind",
			},
			[]string{"kind"},
		),
		PersistTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "offerview",
				Name:      "persist_total",
				Help:      "Total scheduled override persists",
			},
		),
		PersistErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "offerview",
				Name:      "persist_errors_total",
				Help:      "Total failed override persists",
			},
		),
		LoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "offerview",
				Name:      "load_duration_seconds",
				Help:      "Startup override load duration in seconds",
				Buckets:   []float64{.001, .01, .05, .1, .5, 1, 5},
			},
		),
		OverridesLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "offerview",
				Name:      "overrides_loaded",
				Help:      "Override envelopes loaded at the last boot",
			},
		),
	}

	reg.MustRegister(
		c.RenderPasses, c.ModulesRendered, c.ModulesSkipped, c.RenderDuration,
		c.DefinitionCount, c.RegistryMutations,
		c.PersistTotal, c.PersistErrors, c.LoadDuration, c.OverridesLoaded,
	)
	return c, reg
}
