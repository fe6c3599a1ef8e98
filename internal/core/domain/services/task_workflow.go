package services

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/model/task"
	"installation/internal/pkg/errs"
)

// ErrActiveTaskExists is returned when assigning a technician to an order that
// still has a non-terminal task.
var ErrActiveTaskExists = errors.New("order already has an active task")

// AssignResult is the outcome of a technician assignment.
type AssignResult struct {
	Task    *task.Task
	History history.Entry
}

// UpdateResult is the outcome of a task status update. History is set only when
// Changed. Cascade is set when the update completed the order's last active task.
type UpdateResult struct {
	Task    *task.Task
	Changed bool
	History history.Entry
	Cascade *CascadeRequest
}

// TaskWorkflow is the single writer of task statuses. It never changes an order;
// it only requests the completion cascade.
type TaskWorkflow struct {
	capability RoleCapability
	now        func() time.Time
}

func NewTaskWorkflow(now func() time.Time) (*TaskWorkflow, error) {
	if now == nil {
		return nil, errs.NewValueIsRequiredError("now")
	}
	return &TaskWorkflow{capability: NewRoleCapability(), now: now}, nil
}

// Assign creates an Assigned task for technicianID on o.
//
// Checks run in this order:
//   - actor's role may not assign: Forbidden
//   - o is not in PendingSupervisor or InProgress: InvalidTransition
//   - one of existing is still active: ErrActiveTaskExists
func (w *TaskWorkflow) Assign(
	o *order.Order,
	existing []*task.Task,
	technicianID kernel.UUID,
	notes string,
	actor kernel.Actor,
) (AssignResult, error) {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return AssignResult{}, err
	}
	if !assignable(o.Status()) {
		if !w.canAssignAnywhere(actor.Role()) {
			return AssignResult{}, errs.NewForbiddenError(actor.Role().String(), string(ActionAssignTask))
		}
		return AssignResult{}, errs.NewInvalidTransitionError("task", "none", task.Assigned.String())
	}
	if !w.capability.CanPerform(actor.Role(), ActionAssignTask, o) {
		return AssignResult{}, errs.NewForbiddenError(actor.Role().String(), string(ActionAssignTask))
	}
	for _, t := range existing {
		if t.OrderID().IsEqual(o.ID()) && t.IsActive() {
			return AssignResult{}, fmt.Errorf("%w: task %s is %s", ErrActiveTaskExists, t.ID(), t.Status())
		}
	}

	at := w.now()
	created, err := task.NewTask(kernel.NewUUID(), o.ID(), technicianID, notes, at)
	if err != nil {
		return AssignResult{}, err
	}

	note := "technician " + technicianID.String()
	if notes != "" {
		note += ": " + notes
	}
	entry, err := history.NewEntry(o.ID(), history.TaskAssigned, "", "", actor, at, note)
	if err != nil {
		return AssignResult{}, err
	}
	return AssignResult{Task: created, History: entry}, nil
}

// UpdateStatus moves t to newStatus on behalf of actor.
//
// Only the assigned technician or Admin may update a task. Completing an already
// Completed task is a no-op with no cascade. Completing the last active task of the
// order, judged against siblings, returns a cascade request for the order.
func (w *TaskWorkflow) UpdateStatus(
	t *task.Task,
	siblings []*task.Task,
	newStatus task.Status,
	notes string,
	actor kernel.Actor,
) (UpdateResult, error) {
	if err := errors.Join(t.Validate(), actor.Validate(), newStatus.Validate()); err != nil {
		return UpdateResult{}, err
	}
	if !actor.Role().IsAdmin() && !t.IsAssignedTo(actor.ID()) {
		return UpdateResult{}, errs.NewForbiddenErrorWithReason(
			actor.Role().String(), "update task", "task is assigned to another technician",
		)
	}
	if t.Status() == task.Completed && newStatus == task.Completed {
		return UpdateResult{Task: t.Clone()}, nil
	}

	at := w.now()
	next := t.Clone()
	if err := next.ChangeStatus(newStatus, notes, at); err != nil {
		return UpdateResult{}, err
	}

	// Task steps go on the order's trail without order statuses, so they never
	// read as order transitions.
	note := fmt.Sprintf("task %s: %s -> %s", next.ID(), t.Status(), newStatus)
	if notes != "" {
		note += ": " + notes
	}
	entry, err := history.NewEntry(next.OrderID(), history.TaskStatusChanged, "", "", actor, at, note)
	if err != nil {
		return UpdateResult{}, err
	}

	result := UpdateResult{Task: next, Changed: true, History: entry}
	if newStatus == task.Completed && !hasOtherActive(next, siblings) {
		cascade := NewAllTasksCompletedCascade(next.OrderID(), actor.ID())
		result.Cascade = &cascade
	}
	return result, nil
}

// canAssignAnywhere separates a role that could never assign from a role that
// came at the wrong stage.
func (w *TaskWorkflow) canAssignAnywhere(role kernel.Role) bool {
	return slices.Contains(assignerRoles(), role.Effective())
}

func assignable(s order.Status) bool {
	return s == order.PendingSupervisor || s == order.InProgress
}

func hasOtherActive(t *task.Task, siblings []*task.Task) bool {
	for _, s := range siblings {
		if s.ID().IsEqual(t.ID()) || !s.OrderID().IsEqual(t.OrderID()) {
			continue
		}
		if s.IsActive() {
			return true
		}
	}
	return false
}
