package commands

import (
	"errors"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/guard"
)

var (
	ErrRetryCascadeCommandIsNotConstructed = errors.New(
		"RetryCascadeCommand must be created via NewRetryCascadeCommand or NewReconcileCascadeCommand constructor",
	)
)

// RetryCascadeCommand re-applies the completion cascade of an order whose tasks are
// all done but which is still InProgress, typically after a CascadeFailedError.
type RetryCascadeCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy *kernel.Actor

	guard guard.ConstructorGuard
}

// NewRetryCascadeCommand is a retry requested by a user.
func NewRetryCascadeCommand(orderID kernel.UUID, actor kernel.Actor) (RetryCascadeCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return RetryCascadeCommand{}, err
	}

	return RetryCascadeCommand{
		orderID:     orderID,
		requestedBy: &actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewReconcileCascadeCommand is a retry made by the reconciliation job. The cascade
// is attributed to the technician who completed the order's last task.
func NewReconcileCascadeCommand(orderID kernel.UUID) (RetryCascadeCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RetryCascadeCommand{}, err
	}

	return RetryCascadeCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RetryCascadeCommand) Validate() error {
	return c.guard.Validate(ErrRetryCascadeCommandIsNotConstructed)
}

func (c RetryCascadeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the requesting user, or false for a reconciliation run.
func (c RetryCascadeCommand) RequestedBy() (kernel.Actor, bool) {
	if c.requestedBy == nil {
		return kernel.Actor{}, false
	}
	return *c.requestedBy, true
}
