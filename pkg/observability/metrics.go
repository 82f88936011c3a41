package observability

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the simulator's Prometheus collectors.
type Metrics struct {
	Verdicts *prometheus.CounterVec
	Steps    prometheus.Counter
	RunSteps prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Verdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_verdicts_total",
				Help: "Total number of simulated words by verdict",
			},
			[]string{"verdict"},
		),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_steps_total",
			Help: "Total number of applied transitions",
		}),
		RunSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "turing_run_steps",
			Help:    "Transitions applied per simulated word",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.Verdicts, m.Steps, m.RunSteps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Expose both series from the start.
	m.Verdicts.WithLabelValues(domain.Accepted.String())
	m.Verdicts.WithLabelValues(domain.Rejected.String())
	return m, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.Steps.Inc()
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			m.Verdicts.WithLabelValues(e.Verdict.String()).Inc()
			m.RunSteps.Observe(float64(e.Steps))
		},
	}
}
