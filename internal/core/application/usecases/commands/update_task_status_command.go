package commands

import (
	"errors"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/task"
	"installation/internal/pkg/guard"
)

var (
	ErrUpdateTaskStatusCommandIsNotConstructed = errors.New(
		"UpdateTaskStatusCommand must be created via NewUpdateTaskStatusCommand constructor",
	)
)

// UpdateTaskStatusCommand moves a task along its progression, puts it on hold,
// resumes it or returns it.
type UpdateTaskStatusCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	status task.Status
	notes  string
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

func NewUpdateTaskStatusCommand(
	taskID kernel.UUID,
	status task.Status,
	notes string,
	actor kernel.Actor,
) (UpdateTaskStatusCommand, error) {
	if err := errors.Join(
		taskID.Validate(),
		status.Validate(),
		actor.Validate(),
	); err != nil {
		return UpdateTaskStatusCommand{}, err
	}

	return UpdateTaskStatusCommand{
		taskID: taskID,
		status: status,
		notes:  notes,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskStatusCommandIsNotConstructed)
}

func (c UpdateTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c UpdateTaskStatusCommand) Status() task.Status {
	return c.status
}

func (c UpdateTaskStatusCommand) Notes() string {
	return c.notes
}

func (c UpdateTaskStatusCommand) Actor() kernel.Actor {
	return c.actor
}
