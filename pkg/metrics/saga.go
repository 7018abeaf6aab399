package metrics

import "github.com/prometheus/client_golang/prometheus"

// SagaMetrics counts failed compensating steps of multi-step operations.
type SagaMetrics struct {
	failures *prometheus.CounterVec
}

// NewSagaMetrics registers the saga step counters on the provided registerer.
func NewSagaMetrics(reg prometheus.Registerer) *SagaMetrics {
	if reg == nil {
		return &SagaMetrics{}
	}
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saga_step_failures_total",
		Help: "Failed saga steps, by saga, step and applied policy.",
	}, []string{"saga", "step", "policy"})
	reg.MustRegister(failures)
	return &SagaMetrics{failures: failures}
}

// IncStepFailure records a failed step and the policy applied to it.
func (s *SagaMetrics) IncStepFailure(saga, step, policy string) {
	if s == nil || s.failures == nil {
		return
	}
	s.failures.WithLabelValues(normalizeLabel(saga), normalizeLabel(step), normalizeLabel(policy)).Inc()
}
