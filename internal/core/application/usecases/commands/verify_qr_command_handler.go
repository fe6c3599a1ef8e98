package commands

import (
	"context"

	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
)

// VerifyQRCommandHandler closes PendingQR orders whose live token is presented.
// A wrong or already used token fails with errs.TokenMismatchError and changes nothing,
// so the user may scan again.
type VerifyQRCommandHandler struct {
	uowFactory OrderUoWFactory
	closure    *services.QRClosure
	recorder   recorder
}

func NewVerifyQRCommandHandler(
	uowFactory OrderUoWFactory,
	closure *services.QRClosure,
	metrics ports.WorkflowMetrics,
) VerifyQRCommandHandler {
	return VerifyQRCommandHandler{
		uowFactory: uowFactory,
		closure:    closure,
		recorder:   recorder{metrics: metrics},
	}
}

func (h *VerifyQRCommandHandler) Handle(ctx context.Context, cmd VerifyQRCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result, err := changeOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (services.TransitionResult, error) {
		return h.closure.Verify(current, cmd.Token(), cmd.Actor())
	})
	if err != nil {
		h.recorder.rejected(err)
		return err
	}

	h.recorder.applied(result)
	return nil
}
