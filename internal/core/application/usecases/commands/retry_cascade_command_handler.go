package commands

import (
	"context"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/model/task"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
	"installation/internal/pkg/errs"
)

// RetryCascadeCommandHandler reconciles orders left InProgress after all their tasks
// finished. It decides from current state only, so running it twice is harmless:
// an order already in PendingQR is reported as not applied.
type RetryCascadeCommandHandler struct {
	uowFactory UoWFactory
	workflow   *services.OrderWorkflow
	recorder   recorder
}

func NewRetryCascadeCommandHandler(
	uowFactory UoWFactory,
	workflow *services.OrderWorkflow,
	metrics ports.WorkflowMetrics,
) RetryCascadeCommandHandler {
	return RetryCascadeCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
		recorder:   recorder{metrics: metrics},
	}
}

// Handle reports whether the cascade was applied by this call.
//
// Returns:
//   - ForbiddenError when a user other than Admin asks for a retry
//   - InvalidTransitionError when the order is neither InProgress nor PendingQR,
//     or still has active tasks or no completed task
func (h *RetryCascadeCommandHandler) Handle(ctx context.Context, cmd RetryCascadeCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	actor, byUser := cmd.RequestedBy()
	if byUser && !actor.Role().IsAdmin() {
		err := errs.NewForbiddenError(actor.Role().String(), "retry cascade")
		h.recorder.rejected(err)
		return false, err
	}

	applied, result, err := h.reconcile(ctx, cmd.OrderID(), actor, byUser)
	if err != nil {
		h.recorder.rejected(err)
		return false, err
	}
	if applied {
		h.recorder.applied(result)
	}
	return applied, nil
}

func (h *RetryCascadeCommandHandler) reconcile(
	ctx context.Context,
	orderID kernel.UUID,
	actor kernel.Actor,
	byUser bool,
) (bool, services.TransitionResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, services.TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return false, services.TransitionResult{}, err
	}
	if current.Status() == order.PendingQR {
		return false, services.TransitionResult{}, nil
	}

	tasks, err := uow.TaskRepository().GetAllForOrder(ctx, orderID)
	if err != nil {
		return false, services.TransitionResult{}, err
	}
	completer, due := lastCompleter(tasks)
	if current.Status() != order.InProgress || !due {
		return false, services.TransitionResult{}, errs.NewInvalidTransitionError(
			"order", current.Status().String(), order.PendingQR.String(),
		)
	}

	triggeredBy := completer
	if byUser {
		triggeredBy = actor.ID()
	}

	result, err := h.workflow.ApplyCascade(current, services.NewAllTasksCompletedCascade(orderID, triggeredBy))
	if err != nil {
		return false, services.TransitionResult{}, err
	}

	if err = orderRepo.Update(ctx, result.Order); err != nil {
		return false, services.TransitionResult{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, result.History); err != nil {
		return false, services.TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, services.TransitionResult{}, err
	}

	return true, result, nil
}

// lastCompleter returns the technician of the most recently completed task and
// whether the cascade is due: no active task and at least one completed one.
func lastCompleter(tasks []*task.Task) (kernel.UUID, bool) {
	var (
		latest    *task.Task
		completed bool
	)
	for _, t := range tasks {
		if t.IsActive() {
			return kernel.UUID{}, false
		}
		if t.Status() != task.Completed {
			continue
		}
		completed = true
		if latest == nil || completedAt(t).After(completedAt(latest)) {
			latest = t
		}
	}
	if !completed {
		return kernel.UUID{}, false
	}
	return latest.TechnicianID(), true
}

func completedAt(t *task.Task) time.Time {
	if updated := t.UpdatedAt(); updated != nil {
		return *updated
	}
	return t.CreatedAt()
}
