package services

import (
	"errors"
	"time"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"
)

// TransitionResult is the outcome of an accepted order operation: the new order
// snapshot and the one history entry describing it.
type TransitionResult struct {
	Order   *order.Order
	History history.Entry
}

// CascadeRequest is a follow-up order transition triggered by another change,
// returned as data so the caller can apply it in its own unit of work.
type CascadeRequest struct {
	OrderID     kernel.UUID
	From        order.Status
	To          order.Status
	TriggeredBy kernel.UUID
}

// NewAllTasksCompletedCascade requests InProgress -> PendingQR for orderID on behalf
// of the user whose task update finished the last active task.
func NewAllTasksCompletedCascade(orderID, triggeredBy kernel.UUID) CascadeRequest {
	return CascadeRequest{
		OrderID:     orderID,
		From:        order.InProgress,
		To:          order.PendingQR,
		TriggeredBy: triggeredBy,
	}
}

// OrderWorkflow is the single writer of order statuses.
//
// Key responsibilities:
//   - Rejecting pairs outside the status table with InvalidTransition
//   - Rejecting roles outside the RoleCapability table with Forbidden
//   - Issuing a QR token on entry to PendingQR
//   - Routing Closed requests to the QR closure protocol
//   - Applying system cascades without a role check
//
// The input order is never mutated; callers persist the returned snapshot.
//
// Example usage:
//
//	workflow, _ := services.NewOrderWorkflow(services.UUIDTokenGenerator{}, time.Now)
//	result, err := workflow.RequestTransition(o, order.PendingSupervisor, salesManager, "looks good")
//	if errors.Is(err, errs.ErrForbidden) {
//	    // role may not approve at this stage
//	}
//	// persist result.Order and append result.History
type OrderWorkflow struct {
	capability RoleCapability
	closure    *QRClosure
	now        func() time.Time
}

// NewOrderWorkflow creates an OrderWorkflow.
//
// Parameters:
//   - tokens: source of QR token values for orders entering PendingQR
//   - now: clock used for history timestamps and events
func NewOrderWorkflow(tokens TokenGenerator, now func() time.Time) (*OrderWorkflow, error) {
	closure, err := NewQRClosure(tokens, now)
	if err != nil {
		return nil, err
	}
	return &OrderWorkflow{capability: NewRoleCapability(), closure: closure, now: now}, nil
}

// Closure exposes the QR closure protocol sharing this workflow's token source and clock.
func (w *OrderWorkflow) Closure() *QRClosure {
	return w.closure
}

func (w *OrderWorkflow) Capability() RoleCapability {
	return w.capability
}

// Create opens a Draft order owned by actor and records its creation entry, which has
// no from status.
func (w *OrderWorkflow) Create(
	id kernel.UUID,
	actor kernel.Actor,
	scope order.Scope,
	priority order.Priority,
	details order.Details,
	note string,
) (TransitionResult, error) {
	if err := actor.Validate(); err != nil {
		return TransitionResult{}, err
	}
	if !w.capability.CanCreate(actor.Role()) {
		return TransitionResult{}, errs.NewForbiddenError(actor.Role().String(), "create order")
	}

	at := w.now()
	o, err := order.NewOrder(id, actor.ID(), scope, priority, details, at)
	if err != nil {
		return TransitionResult{}, err
	}
	entry, err := history.NewEntry(id, history.Created, "", order.Draft.String(), actor, at, note)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Order: o, History: entry}, nil
}

// RequestTransition validates and computes one user-requested order transition.
//
// Parameters:
//   - o: current order snapshot
//   - to: requested target status
//   - actor: identity the request is made under
//   - note: free text stored on the history entry
//
// Returns:
//   - TransitionResult: the new snapshot and its history entry
//   - error: InvalidTransitionError for an illegal pair, ForbiddenError for a role
//     without authority; legality is checked first
func (w *OrderWorkflow) RequestTransition(o *order.Order, to order.Status, actor kernel.Actor, note string) (TransitionResult, error) {
	if err := errors.Join(o.Validate(), actor.Validate(), to.Validate()); err != nil {
		return TransitionResult{}, err
	}
	from := o.Status()
	if !from.CanTransitionTo(to) {
		return TransitionResult{}, errs.NewInvalidTransitionError("order", from.String(), to.String())
	}
	if actor.IsSystem() {
		return TransitionResult{}, errs.NewForbiddenErrorWithReason(
			actor.Role().String(), "move order to "+to.String(), "system transitions are cascades only",
		)
	}

	if to == order.Closed {
		if actor.Role().IsAdmin() {
			return w.closure.AdminOverrideClose(o, actor, note)
		}
		return TransitionResult{}, errs.NewForbiddenErrorWithReason(
			actor.Role().String(), "close order", "closure requires QR verification",
		)
	}

	action, err := w.capability.authorize(actor.Role(), o, to)
	if err != nil {
		return TransitionResult{}, err
	}

	return w.apply(o, to, history.Action(action), actor, note)
}

// ApplyCascade applies a system cascade to o. No role check is made; the request's
// source status must still match.
func (w *OrderWorkflow) ApplyCascade(o *order.Order, cascade CascadeRequest) (TransitionResult, error) {
	if err := o.Validate(); err != nil {
		return TransitionResult{}, err
	}
	if !o.ID().IsEqual(cascade.OrderID) {
		return TransitionResult{}, errs.NewValueIsInvalidError("cascade order id")
	}
	if o.Status() != cascade.From || !o.Status().CanTransitionTo(cascade.To) {
		return TransitionResult{}, errs.NewInvalidTransitionError("order", o.Status().String(), cascade.To.String())
	}

	return w.apply(o, cascade.To, history.AllTasksCompleted, kernel.NewSystemActor(cascade.TriggeredBy), "")
}

func (w *OrderWorkflow) apply(o *order.Order, to order.Status, action history.Action, actor kernel.Actor, note string) (TransitionResult, error) {
	at := w.now()
	from := o.Status()

	next := o.Clone()
	if err := next.TransitionTo(to, at); err != nil {
		return TransitionResult{}, err
	}
	if to == order.PendingQR {
		if err := w.closure.issueOn(next); err != nil {
			return TransitionResult{}, err
		}
	}

	entry, err := history.NewEntry(o.ID(), action, from.String(), to.String(), actor, at, note)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Order: next, History: entry}, nil
}
