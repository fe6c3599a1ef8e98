package commands

import (
	"errors"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/guard"
)

var (
	ErrAdminOverrideCloseCommandIsNotConstructed = errors.New(
		"AdminOverrideCloseCommand must be created via NewAdminOverrideCloseCommand constructor",
	)
)

// AdminOverrideCloseCommand closes a PendingQR order without its token, for example
// when the printed code was lost.
type AdminOverrideCloseCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	note    string

	guard guard.ConstructorGuard
}

func NewAdminOverrideCloseCommand(orderID kernel.UUID, actor kernel.Actor, note string) (AdminOverrideCloseCommand, error) {
	cmd := AdminOverrideCloseCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return AdminOverrideCloseCommand{}, err
	}
	cmd.orderID = orderID
	cmd.actor = actor

	return cmd, nil
}

func (c AdminOverrideCloseCommand) Validate() error {
	return c.guard.Validate(ErrAdminOverrideCloseCommandIsNotConstructed)
}

func (c AdminOverrideCloseCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdminOverrideCloseCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AdminOverrideCloseCommand) Note() string {
	return c.note
}
