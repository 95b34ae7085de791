// SPDX-License-Identifier: MIT

// Package metrics exposes registry build counters on a private Prometheus
// registry and writes them in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/srgcat/srg"
)

// Metrics holds one build's instruments.
type Metrics struct {
	reg *prometheus.Registry

	// classified counts registry insertions by family.
	classified *prometheus.CounterVec

	feasible  prometheus.Gauge
	entries   prometheus.Gauge
	leftovers prometheus.Gauge

	// buildDuration tracks Build plus Close wall time.
	buildDuration prometheus.Histogram
}

// New registers the srgcat instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		classified: f.NewCounterVec(prometheus.CounterOpts{
			Name: "srgcat_classified_total",
			Help: "Registry entries inserted, by family",
		}, []string{"family"}),
		feasible: f.NewGauge(prometheus.GaugeOpts{
			Name: "srgcat_feasible_tuples",
			Help: "Feasible tuples offered to the classifier",
		}),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Name: "srgcat_registry_entries",
			Help: "Registry size after complement closure",
		}),
		leftovers: f.NewGauge(prometheus.GaugeOpts{
			Name: "srgcat_leftovers",
			Help: "Catalog tuples known to exist without a recipe",
		}),
		buildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "srgcat_build_duration_seconds",
			Help:    "Registry build and closure duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// Observe counts one insertion; it has the srg.WithObserver signature.
func (m *Metrics) Observe(_ srg.Params, f srg.Family) {
	m.classified.WithLabelValues(f.String()).Inc()
}

// ObserveClosure counts the entries added by srg.Close.
func (m *Metrics) ObserveClosure(added int) {
	m.classified.WithLabelValues(srg.FamilyComplement.String()).Add(float64(added))
}

// SetFeasible records the classifier input size.
func (m *Metrics) SetFeasible(n int) { m.feasible.Set(float64(n)) }

// SetRegistry records the registry size.
func (m *Metrics) SetRegistry(reg *srg.Registry) { m.entries.Set(float64(reg.Len())) }

// SetLeftovers records the leftover count.
func (m *Metrics) SetLeftovers(n int) { m.leftovers.Set(float64(n)) }

// ObserveDuration records a build duration.
func (m *Metrics) ObserveDuration(d time.Duration) { m.buildDuration.Observe(d.Seconds()) }

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.reg }

// WriteTextfile writes all metrics to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
