package commands

import (
	"context"

	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
)

// TransitionOrderCommandHandler applies user-requested order transitions.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, workflow, metrics)
//	cmd, _ := NewTransitionOrderCommand(orderID, order.PendingSupervisor, salesManager, "approved")
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the order is not in a state that can move there
//	case errors.Is(err, errs.ErrForbidden):
//	    // the role may not make this move
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	workflow   *services.OrderWorkflow
	recorder   recorder
}

func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	workflow *services.OrderWorkflow,
	metrics ports.WorkflowMetrics,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
		recorder:   recorder{metrics: metrics},
	}
}

// Handle loads the order, lets the workflow decide and stores the new snapshot with
// exactly one history entry. A refused request leaves the order untouched.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result, err := changeOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (services.TransitionResult, error) {
		return h.workflow.RequestTransition(current, cmd.To(), cmd.Actor(), cmd.Note())
	})
	if err != nil {
		h.recorder.rejected(err)
		return err
	}

	h.recorder.applied(result)
	return nil
}
