package commands

import (
	"context"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
)

// AssignTaskCommandHandler creates technician tasks. At most one active task per
// order is enforced against the tasks read in the same transaction.
//
// Example:
//
//	handler := NewAssignTaskCommandHandler(uowFactory, taskWorkflow, metrics)
//	cmd, _ := NewAssignTaskCommand(orderID, technicianID, "bring the long ladder", supervisor)
//
//	taskID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrActiveTaskExists) {
//	    // the current task must finish or be returned first
//	}
type AssignTaskCommandHandler struct {
	uowFactory UoWFactory
	workflow   *services.TaskWorkflow
	recorder   recorder
}

func NewAssignTaskCommandHandler(
	uowFactory UoWFactory,
	workflow *services.TaskWorkflow,
	metrics ports.WorkflowMetrics,
) AssignTaskCommandHandler {
	return AssignTaskCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
		recorder:   recorder{metrics: metrics},
	}
}

// Handle returns the id of the created task.
func (h *AssignTaskCommandHandler) Handle(ctx context.Context, cmd AssignTaskCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		h.recorder.rejected(err)
		return kernel.UUID{}, err
	}

	taskRepo := uow.TaskRepository()
	existing, err := taskRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	result, err := h.workflow.Assign(current, existing, cmd.TechnicianID(), cmd.Notes(), cmd.Actor())
	if err != nil {
		h.recorder.rejected(err)
		return kernel.UUID{}, err
	}

	if err = taskRepo.Add(ctx, result.Task); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, result.History); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return result.Task.ID(), nil
}
