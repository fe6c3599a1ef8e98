package metrics_test

import (
	"testing"

	"installation/internal/adapters/out/metrics"
	"installation/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.WorkflowMetrics = (*metrics.WorkflowMetrics)(nil)

func TestWorkflowMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWorkflowMetrics(reg)

	m.TransitionApplied("InProgress", "PendingQR", "AllTasksCompleted")
	m.TransitionApplied("InProgress", "PendingQR", "AllTasksCompleted")
	m.TransitionRejected("forbidden")
	m.CascadeFailed()

	count, err := testutil.GatherAndCount(reg, "installation_order_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			values[family.GetName()] += metric.GetCounter().GetValue()
		}
	}
	assert.InDelta(t, 2, values["installation_order_transitions_total"], 0)
	assert.InDelta(t, 1, values["installation_workflow_rejections_total"], 0)
	assert.InDelta(t, 1, values["installation_cascade_failures_total"], 0)
}

func TestNewWorkflowMetrics_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewWorkflowMetrics(reg)

	assert.Panics(t, func() { metrics.NewWorkflowMetrics(reg) })
}
