package queries

import (
	"errors"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
	"installation/internal/pkg/guard"
)

var (
	ErrGetOrderActionsQueryIsNotConstructed = errors.New(
		"GetOrderActionsQuery must be created via NewGetOrderActionsQuery constructor",
	)
)

// GetOrderActionsQuery asks what the actor may do with an order right now.
// Clients use the answer to decide which buttons to offer.
type GetOrderActionsQuery struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderActionsQuery(orderID kernel.UUID, actor kernel.Actor) (GetOrderActionsQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderActionsQuery{}, err
	}
	return GetOrderActionsQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderActionsQueryIsNotConstructed)
}

func (q GetOrderActionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderActionsQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderActionsView lists the allowed actions and the statuses reachable through
// the generic handle endpoint.
type OrderActionsView struct {
	Status  order.Status
	Actions []services.Action
	Targets []order.Status
}
