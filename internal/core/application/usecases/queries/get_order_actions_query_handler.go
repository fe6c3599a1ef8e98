package queries

import (
	"context"

	"installation/internal/core/domain/services"
)

type GetOrderActionsQueryHandler struct {
	orders       OrderReader
	capabilities services.RoleCapability
}

func NewGetOrderActionsQueryHandler(orders OrderReader) GetOrderActionsQueryHandler {
	return GetOrderActionsQueryHandler{
		orders:       orders,
		capabilities: services.NewRoleCapability(),
	}
}

func (h GetOrderActionsQueryHandler) Handle(ctx context.Context, query GetOrderActionsQuery) (OrderActionsView, error) {
	if err := query.Validate(); err != nil {
		return OrderActionsView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderActionsView{}, err
	}

	role := query.Actor().Role()
	return OrderActionsView{
		Status:  o.Status(),
		Actions: h.capabilities.AllowedActions(role, o),
		Targets: h.capabilities.AllowedTargets(role, o),
	}, nil
}
