package commands

import (
	"errors"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/guard"
)

var (
	ErrReissueQRCommandIsNotConstructed = errors.New(
		"ReissueQRCommand must be created via NewReissueQRCommand constructor",
	)
)

// ReissueQRCommand replaces the live token of a PendingQR order. The old token stops
// verifying immediately.
type ReissueQRCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	note    string

	guard guard.ConstructorGuard
}

func NewReissueQRCommand(orderID kernel.UUID, actor kernel.Actor, note string) (ReissueQRCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return ReissueQRCommand{}, err
	}

	return ReissueQRCommand{
		orderID: orderID,
		actor:   actor,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReissueQRCommand) Validate() error {
	return c.guard.Validate(ErrReissueQRCommandIsNotConstructed)
}

func (c ReissueQRCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReissueQRCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ReissueQRCommand) Note() string {
	return c.note
}
