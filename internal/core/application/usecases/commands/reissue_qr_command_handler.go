package commands

import (
	"context"

	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
)

// ReissueQRCommandHandler issues a fresh token for a PendingQR order.
type ReissueQRCommandHandler struct {
	uowFactory OrderUoWFactory
	closure    *services.QRClosure
	recorder   recorder
}

func NewReissueQRCommandHandler(
	uowFactory OrderUoWFactory,
	closure *services.QRClosure,
	metrics ports.WorkflowMetrics,
) ReissueQRCommandHandler {
	return ReissueQRCommandHandler{
		uowFactory: uowFactory,
		closure:    closure,
		recorder:   recorder{metrics: metrics},
	}
}

func (h *ReissueQRCommandHandler) Handle(ctx context.Context, cmd ReissueQRCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := changeOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (services.TransitionResult, error) {
		return h.closure.ReissueToken(current, cmd.Actor(), cmd.Note())
	})
	if err != nil {
		h.recorder.rejected(err)
		return err
	}

	return nil
}
