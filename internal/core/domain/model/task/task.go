package task

import (
	"errors"
	"fmt"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/errs"
)

var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// Task is one technician's assignment against one order. Tasks are never deleted;
// their history ends in Completed or Returned.
type Task struct {
	id           kernel.UUID
	orderID      kernel.UUID
	technicianID kernel.UUID
	status       Status
	notes        string

	// heldFrom is the state an OnHold task resumes to.
	heldFrom *Status

	createdAt time.Time
	updatedAt *time.Time

	isConstructed bool
}

// NewTask creates a task in Assigned.
func NewTask(id, orderID, technicianID kernel.UUID, notes string, createdAt time.Time) (*Task, error) {
	t := &Task{
		status:        Assigned,
		notes:         notes,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setTechnicianID(technicianID),
	); err != nil {
		return nil, err
	}
	return t, nil
}

// RestoreTask rebuilds a task read from persistence.
func RestoreTask(
	id, orderID, technicianID kernel.UUID,
	status Status,
	notes string,
	heldFrom *Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Task, error) {
	t := &Task{
		notes:         notes,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setTechnicianID(technicianID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	t.status = status

	if heldFrom != nil {
		if status != OnHold || !heldFrom.IsActive() || *heldFrom == OnHold {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"held from",
				fmt.Errorf("%s on a task in %s", heldFrom, status),
			)
		}
		h := *heldFrom
		t.heldFrom = &h
	}
	if updatedAt != nil {
		u := updatedAt.UTC()
		t.updatedAt = &u
	}
	return t, nil
}

func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID {
	return t.id
}

func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

func (t *Task) TechnicianID() kernel.UUID {
	return t.technicianID
}

func (t *Task) Status() Status {
	return t.status
}

func (t *Task) Notes() string {
	return t.notes
}

func (t *Task) HeldFrom() *Status {
	if t.heldFrom == nil {
		return nil
	}
	h := *t.heldFrom
	return &h
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() *time.Time {
	if t.updatedAt == nil {
		return nil
	}
	u := *t.updatedAt
	return &u
}

func (t *Task) IsActive() bool {
	return t.status.IsActive()
}

// IsAssignedTo reports whether technicianID owns this task.
func (t *Task) IsAssignedTo(technicianID kernel.UUID) bool {
	return t.technicianID.IsEqual(technicianID)
}

func (t *Task) Clone() *Task {
	c := *t
	c.heldFrom = t.HeldFrom()
	c.updatedAt = t.UpdatedAt()
	return &c
}

// ChangeStatus applies one lifecycle step. Authorization is the task workflow's job.
func (t *Task) ChangeStatus(to Status, notes string, at time.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	heldFrom := Unknown
	if t.heldFrom != nil {
		heldFrom = *t.heldFrom
	}
	if !t.status.CanTransitionTo(to, heldFrom) {
		return errs.NewInvalidTransitionError("task", t.status.String(), to.String())
	}

	switch {
	case to == OnHold:
		from := t.status
		t.heldFrom = &from
	case t.status == OnHold:
		t.heldFrom = nil
	}

	t.status = to
	if notes != "" {
		t.notes = notes
	}
	updated := at.UTC()
	t.updatedAt = &updated
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	t.orderID = orderID
	return nil
}

func (t *Task) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("technician id", err)
	}
	t.technicianID = technicianID
	return nil
}
