package commands

import (
	"context"
	"errors"
	"log/slog"

	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
	"installation/internal/pkg/errs"
)

// errCascadeNotDue marks a completed last task on an order that is not InProgress,
// such as one still awaiting supervisor approval or already cancelled.
var errCascadeNotDue = errors.New("completion cascade not due")

// UpdateTaskStatusCommandHandler applies task status changes and, when the last
// active task of an order completes, the order's completion cascade.
//
// The task update and the cascade run in two transactions. The task update always
// stands once committed; if the cascade then fails, Handle returns an
// *errs.CascadeFailedError and the cascade is left to RetryCascadeCommandHandler.
// An order that is not InProgress when its last task completes is left as is.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	var cascadeErr *errs.CascadeFailedError
//	switch {
//	case errors.As(err, &cascadeErr):
//	    // the task is Completed; the order is still InProgress
//	case err != nil:
//	    // nothing changed
//	}
type UpdateTaskStatusCommandHandler struct {
	uowFactory      UoWFactory
	orderUoWFactory OrderUoWFactory
	taskWorkflow    *services.TaskWorkflow
	orderWorkflow   *services.OrderWorkflow
	recorder        recorder
	logger          *slog.Logger
}

func NewUpdateTaskStatusCommandHandler(
	uowFactory UoWFactory,
	orderUoWFactory OrderUoWFactory,
	taskWorkflow *services.TaskWorkflow,
	orderWorkflow *services.OrderWorkflow,
	metrics ports.WorkflowMetrics,
	logger *slog.Logger,
) UpdateTaskStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateTaskStatusCommandHandler{
		uowFactory:      uowFactory,
		orderUoWFactory: orderUoWFactory,
		taskWorkflow:    taskWorkflow,
		orderWorkflow:   orderWorkflow,
		recorder:        recorder{metrics: metrics},
		logger:          logger.With("component", "update_task_status"),
	}
}

func (h *UpdateTaskStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTaskStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result, err := h.updateTask(ctx, cmd)
	if err != nil {
		h.recorder.rejected(err)
		return err
	}
	if result.Cascade == nil {
		return nil
	}

	cascade := *result.Cascade
	applied, err := changeOrder(ctx, h.orderUoWFactory, cascade.OrderID, func(current *order.Order) (services.TransitionResult, error) {
		if current.Status() != cascade.From {
			return services.TransitionResult{}, errCascadeNotDue
		}
		return h.orderWorkflow.ApplyCascade(current, cascade)
	})
	if errors.Is(err, errCascadeNotDue) {
		h.logger.DebugContext(ctx, "completion cascade not due",
			"order_id", cascade.OrderID.String(),
			"task_id", cmd.TaskID().String(),
		)
		return nil
	}
	if err != nil {
		h.recorder.cascadeFailed()
		h.logger.WarnContext(ctx, "completion cascade failed",
			"order_id", cascade.OrderID.String(),
			"task_id", cmd.TaskID().String(),
			"error", err,
		)
		return errs.NewCascadeFailedError(cascade.OrderID.String(), err)
	}

	h.recorder.applied(applied)
	return nil
}

func (h *UpdateTaskStatusCommandHandler) updateTask(ctx context.Context, cmd UpdateTaskStatusCommand) (services.UpdateResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.UpdateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	current, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return services.UpdateResult{}, err
	}
	siblings, err := taskRepo.GetAllForOrder(ctx, current.OrderID())
	if err != nil {
		return services.UpdateResult{}, err
	}

	result, err := h.taskWorkflow.UpdateStatus(current, siblings, cmd.Status(), cmd.Notes(), cmd.Actor())
	if err != nil {
		return services.UpdateResult{}, err
	}
	if !result.Changed {
		return result, nil
	}

	if err = taskRepo.Update(ctx, result.Task); err != nil {
		return services.UpdateResult{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, result.History); err != nil {
		return services.UpdateResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.UpdateResult{}, err
	}

	return result, nil
}
