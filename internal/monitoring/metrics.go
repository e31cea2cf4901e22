// Package monitoring exposes Prometheus counters for classification runs.
// Wiring it is optional: the classifier accepts any Recorder, and a nil
// recorder disables collection entirely.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pageforge/recast/internal/component"
)

// Metrics holds the classification counters.
type Metrics struct {
	RunsTotal        prometheus.Counter
	ComponentsTotal  *prometheus.CounterVec
	DiagnosticsTotal *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "recast_classification_runs_total",
			Help: "Total classification runs",
		}),
		ComponentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recast_components_total",
			Help: "Components emitted by type",
		}, []string{"type"}),
		DiagnosticsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recast_diagnostics_total",
			Help: "Contained classification failures by code",
		}, []string{"code"}),
	}
}

// ObserveRun counts one classification run.
func (m *Metrics) ObserveRun() {
	m.RunsTotal.Inc()
}

// ObserveComponent counts one emitted component.
func (m *Metrics) ObserveComponent(t component.Type) {
	m.ComponentsTotal.WithLabelValues(string(t)).Inc()
}

// ObserveDiagnostic counts one contained failure.
func (m *Metrics) ObserveDiagnostic(code string) {
	m.DiagnosticsTotal.WithLabelValues(code).Inc()
}
