package ports

// WorkflowMetrics records workflow outcomes for monitoring.
type WorkflowMetrics interface {
	// TransitionApplied counts one committed order status change.
	TransitionApplied(from, to, action string)

	// TransitionRejected counts a request refused by the workflow, by error kind.
	TransitionRejected(kind string)

	// CascadeFailed counts a completion cascade that could not be applied.
	CascadeFailed()
}
