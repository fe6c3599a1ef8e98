package queries

import (
	"errors"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/task"
	"installation/internal/pkg/guard"
)

var (
	ErrGetTasksQueryIsNotConstructed = errors.New(
		"GetTasksQuery must be created via NewGetTasksQuery constructor",
	)
)

// GetTasksQuery lists technician tasks, optionally for one order.
// A technician only ever sees the tasks assigned to them.
//
// Example:
//
//	query, err := NewGetTasksQuery(technician, nil)
//	tasks, err := handler.Handle(ctx, query) // the technician's own tasks
type GetTasksQuery struct {
	actor   kernel.Actor
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTasksQuery(actor kernel.Actor, orderID *kernel.UUID) (GetTasksQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetTasksQuery{}, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetTasksQuery{}, err
		}
	}
	return GetTasksQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetTasksQueryIsNotConstructed)
}

func (q GetTasksQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetTasksQuery) OrderID() *kernel.UUID {
	return q.orderID
}

type TaskView struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	TechnicianID kernel.UUID
	Status       task.Status
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
