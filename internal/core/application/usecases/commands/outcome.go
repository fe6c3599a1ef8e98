package commands

import (
	"errors"

	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
	"installation/internal/pkg/errs"
)

// Rejection kinds reported to WorkflowMetrics.
const (
	RejectedInvalidTransition = "invalid_transition"
	RejectedForbidden         = "forbidden"
	RejectedTokenMismatch     = "token_mismatch"
	RejectedNotFound          = "not_found"
	RejectedConflict          = "conflict"
	RejectedActiveTask        = "active_task_exists"
	RejectedValidation        = "validation"
)

// RejectionKind classifies a workflow error. It returns "" for errors that are not
// a refusal, such as infrastructure failures.
func RejectionKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errs.ErrInvalidTransition):
		return RejectedInvalidTransition
	case errors.Is(err, errs.ErrForbidden):
		return RejectedForbidden
	case errors.Is(err, errs.ErrTokenMismatch):
		return RejectedTokenMismatch
	case errors.Is(err, errs.ErrObjectNotFound):
		return RejectedNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return RejectedConflict
	case errors.Is(err, services.ErrActiveTaskExists):
		return RejectedActiveTask
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return RejectedValidation
	default:
		return ""
	}
}

// recorder forwards to WorkflowMetrics and tolerates a nil sink.
type recorder struct {
	metrics ports.WorkflowMetrics
}

func (r recorder) applied(result services.TransitionResult) {
	if r.metrics == nil {
		return
	}
	r.metrics.TransitionApplied(
		result.History.FromStatus(),
		result.History.ToStatus(),
		string(result.History.Action()),
	)
}

func (r recorder) rejected(err error) {
	if r.metrics == nil {
		return
	}
	if kind := RejectionKind(err); kind != "" {
		r.metrics.TransitionRejected(kind)
	}
}

func (r recorder) cascadeFailed() {
	if r.metrics == nil {
		return
	}
	r.metrics.CascadeFailed()
}
