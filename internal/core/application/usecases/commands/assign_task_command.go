package commands

import (
	"errors"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/errs"
	"installation/internal/pkg/guard"
)

var (
	ErrAssignTaskCommandIsNotConstructed = errors.New(
		"AssignTaskCommand must be created via NewAssignTaskCommand constructor",
	)
)

// AssignTaskCommand assigns a technician to an order that awaits or is under installation.
type AssignTaskCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	technicianID kernel.UUID
	notes        string
	actor        kernel.Actor

	guard guard.ConstructorGuard
}

func NewAssignTaskCommand(
	orderID kernel.UUID,
	technicianID kernel.UUID,
	notes string,
	actor kernel.Actor,
) (AssignTaskCommand, error) {
	cmd := AssignTaskCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTechnicianID(technicianID),
		cmd.setActor(actor),
	); err != nil {
		return AssignTaskCommand{}, err
	}

	return cmd, nil
}

func (c AssignTaskCommand) Validate() error {
	return c.guard.Validate(ErrAssignTaskCommandIsNotConstructed)
}

func (c AssignTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignTaskCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c AssignTaskCommand) Notes() string {
	return c.notes
}

func (c AssignTaskCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AssignTaskCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignTaskCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("technician id", err)
	}

	c.technicianID = technicianID
	return nil
}

func (c *AssignTaskCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
