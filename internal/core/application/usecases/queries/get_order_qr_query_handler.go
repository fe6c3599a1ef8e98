package queries

import (
	"context"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/ports"
	"installation/internal/pkg/errs"
)

// GetOrderQRQueryHandler renders "<orderId>:<token>" for the live token only.
// Technicians are never shown the code.
type GetOrderQRQueryHandler struct {
	orders   OrderReader
	renderer ports.QRRenderer
}

func NewGetOrderQRQueryHandler(orders OrderReader, renderer ports.QRRenderer) GetOrderQRQueryHandler {
	return GetOrderQRQueryHandler{orders: orders, renderer: renderer}
}

// Handle returns a PNG image.
//
// Returns:
//   - ForbiddenError for technicians
//   - ObjectNotFoundError when the order is unknown or holds no live token
func (h GetOrderQRQueryHandler) Handle(ctx context.Context, query GetOrderQRQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	role := query.Actor().Role()
	if role.Effective() == kernel.Technician {
		return nil, errs.NewForbiddenErrorWithReason(role.String(), "view qr code", "the code is scanned, not shown, by technicians")
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	token := o.LiveQRToken()
	if token == nil {
		return nil, errs.NewObjectNotFoundError("live qr token", o.ID().String())
	}

	return h.renderer.RenderPNG(order.EncodeQRPayload(o.ID(), *token), query.Size())
}
