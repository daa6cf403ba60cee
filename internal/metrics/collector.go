// Package metrics exports sandbox tick statistics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sandbox"

// Source is the view of a running sandbox the collector samples after each
// tick.
type Source interface {
	Tick() uint64
	LastRepairs() int
	Counts() map[string]int
}

// Collector holds the sandbox metrics.
type Collector struct {
	ticks      prometheus.Counter
	repairs    prometheus.Counter
	population *prometheus.GaugeVec
	stepTime   prometheus.Histogram

	gatherer prometheus.Gatherer
	lastTick uint64
}

// New creates the metrics and registers them with reg. A nil reg gets a
// private registry.
func New(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collector{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Ticks simulated.",
		}),
		repairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resync_repairs_total",
			Help:      "Grid slots corrected by periodic resync.",
		}),
		population: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cells",
			Help:      "Live cells per material.",
		}, []string{"kind"}),
		stepTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time of a single tick.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
		gatherer: reg,
	}
	reg.MustRegister(c.ticks, c.repairs, c.population, c.stepTime)
	return c
}

// Observe records the state of src after a tick that took took.
func (c *Collector) Observe(src Source, took time.Duration) {
	tick := src.Tick()
	if tick < c.lastTick {
		// reset rewinds the clock
		c.lastTick = 0
	}
	if d := tick - c.lastTick; d > 0 {
		c.ticks.Add(float64(d))
	}
	c.lastTick = tick

	if n := src.LastRepairs(); n > 0 {
		c.repairs.Add(float64(n))
	}
	for kind, n := range src.Counts() {
		c.population.WithLabelValues(kind).Set(float64(n))
	}
	c.stepTime.Observe(took.Seconds())
}

// Handler serves the registry the collector was created with.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
