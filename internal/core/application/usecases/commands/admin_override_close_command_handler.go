package commands

import (
	"context"

	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
)

// AdminOverrideCloseCommandHandler closes PendingQR orders on an Admin's word.
// The history entry is marked as an override so audits can tell it from a scan.
type AdminOverrideCloseCommandHandler struct {
	uowFactory OrderUoWFactory
	closure    *services.QRClosure
	recorder   recorder
}

func NewAdminOverrideCloseCommandHandler(
	uowFactory OrderUoWFactory,
	closure *services.QRClosure,
	metrics ports.WorkflowMetrics,
) AdminOverrideCloseCommandHandler {
	return AdminOverrideCloseCommandHandler{
		uowFactory: uowFactory,
		closure:    closure,
		recorder:   recorder{metrics: metrics},
	}
}

func (h *AdminOverrideCloseCommandHandler) Handle(ctx context.Context, cmd AdminOverrideCloseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result, err := changeOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (services.TransitionResult, error) {
		return h.closure.AdminOverrideClose(current, cmd.Actor(), cmd.Note())
	})
	if err != nil {
		h.recorder.rejected(err)
		return err
	}

	h.recorder.applied(result)
	return nil
}
