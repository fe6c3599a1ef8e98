// Package metrics exports workflow outcomes as Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "installation"

// WorkflowMetrics implements ports.WorkflowMetrics.
type WorkflowMetrics struct {
	transitions   *prometheus.CounterVec
	rejections    *prometheus.CounterVec
	cascadeFailed prometheus.Counter
}

// NewWorkflowMetrics registers the collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewWorkflowMetrics(reg prometheus.Registerer) *WorkflowMetrics {
	factory := promauto.With(reg)
	return &WorkflowMetrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Committed order status changes.",
		}, []string{"from", "to", "action"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_rejections_total",
			Help:      "Workflow requests refused, by error kind.",
		}, []string{"kind"}),
		cascadeFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascade_failures_total",
			Help:      "Completion cascades that failed after the task update committed.",
		}),
	}
}

func (m *WorkflowMetrics) TransitionApplied(from, to, action string) {
	m.transitions.WithLabelValues(from, to, action).Inc()
}

func (m *WorkflowMetrics) TransitionRejected(kind string) {
	m.rejections.WithLabelValues(kind).Inc()
}

func (m *WorkflowMetrics) CascadeFailed() {
	m.cascadeFailed.Inc()
}
