package commands

import (
	"context"

	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
)

// CreateOrderCommandHandler opens Draft orders and records their creation in the
// order history.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, workflow, metrics)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now a Draft owned by the actor
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	workflow   *services.OrderWorkflow
	recorder   recorder
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// metrics may be nil.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	workflow *services.OrderWorkflow,
	metrics ports.WorkflowMetrics,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
		recorder:   recorder{metrics: metrics},
	}
}

// Handle processes the order creation command. The actor's role must be allowed to
// create orders; the order and its creation entry are written in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result, err := h.workflow.Create(cmd.OrderID(), cmd.Actor(), cmd.Scope(), cmd.Priority(), cmd.Details(), cmd.Note())
	if err != nil {
		h.recorder.rejected(err)
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, result.Order); err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, result.History); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.recorder.applied(result)
	return nil
}
