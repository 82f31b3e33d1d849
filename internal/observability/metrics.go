// Package observability wires the pipeline's lifecycle hooks to
// Prometheus collectors.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/telluric-labs/matfeas/pkg/domain"
)

// Metrics bundles the collectors the engine and its adapters emit.
type Metrics struct {
	Evaluations   *prometheus.CounterVec
	StageFailures *prometheus.CounterVec
	OracleLatency *prometheus.HistogramVec
}

// New creates and registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matfeas_evaluations_total",
				Help: "Formula evaluations by terminal verdict.",
			},
			[]string{"verdict"},
		),
		StageFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matfeas_stage_failures_total",
				Help: "Failed pipeline decisions by stage name.",
			},
			[]string{"stage"},
		),
		OracleLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matfeas_collaborator_seconds",
				Help:    "Latency of external collaborator calls.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"collaborator"},
		),
	}
	reg.MustRegister(m.Evaluations, m.StageFailures, m.OracleLatency)
	return m
}

// Hooks adapts the collectors into pipeline lifecycle hooks.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnDecision: func(_ context.Context, _ string, d domain.Decision) {
			if !d.Passed {
				m.StageFailures.WithLabelValues(d.Name).Inc()
			}
		},
		OnVerdict: func(_ context.Context, _ string, v domain.Verdict) {
			m.Evaluations.WithLabelValues(string(v)).Inc()
		},
	}
}
