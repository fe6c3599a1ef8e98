package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Scope is the branch and department an order belongs to. It resolves the eligible
// technicians and never changes after creation.
type Scope struct {
	BranchID     int
	DepartmentID int
}

func (s Scope) Validate() error {
	var errList []error
	if s.BranchID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("branch id", fmt.Errorf("%d is not greater than 0", s.BranchID)))
	}
	if s.DepartmentID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("department id", fmt.Errorf("%d is not greater than 0", s.DepartmentID)))
	}
	return errors.Join(errList...)
}

// Details carries the informational fields of the backend order. None of them
// takes part in workflow decisions.
type Details struct {
	City          string
	Address       string
	ScheduledDate *time.Time
	QuotationID   string
	InvoiceID     string
	CustomerID    string
}

func (d Details) Validate() error {
	var errList []error
	if strings.TrimSpace(d.City) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	if strings.TrimSpace(d.Address) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("address"))
	}
	if strings.TrimSpace(d.CustomerID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer id"))
	}
	return errors.Join(errList...)
}

// Order is the installation job aggregate. Its status only changes through
// TransitionTo, which the order workflow service calls on a cloned snapshot, so a
// rejected request never leaves a half-mutated order behind.
type Order struct {
	id        kernel.UUID
	status    Status
	scope     Scope
	priority  Priority
	details   Details
	createdBy kernel.UUID
	createdAt time.Time

	// qrToken is nil until the order first enters PendingQR.
	qrToken *QRToken

	// returnedFrom remembers which stage sent the order back, so re-submission
	// returns it to the right queue.
	returnedFrom *Status

	// version is the optimistic-concurrency counter read from persistence.
	version int

	events []StatusChangedEvent

	isConstructed bool
}

// NewOrder creates a Draft order.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), salesRep.ID(),
//	    order.Scope{BranchID: 1, DepartmentID: 4}, order.Normal,
//	    order.Details{City: "Riyadh", Address: "King Fahd Rd 12", CustomerID: "C-1001"},
//	    time.Now())
func NewOrder(
	id kernel.UUID,
	createdBy kernel.UUID,
	scope Scope,
	priority Priority,
	details Details,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedBy(createdBy),
		o.setScope(scope),
		o.setPriority(priority),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from persistence, checking the invariants
// that tie the status to the QR token and to the returned-from marker.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	scope Scope,
	priority Priority,
	details Details,
	createdBy kernel.UUID,
	createdAt time.Time,
	qrToken *QRToken,
	returnedFrom *Status,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		qrToken:       qrToken,
		returnedFrom:  returnedFrom,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedBy(createdBy),
		o.setScope(scope),
		o.setPriority(priority),
		o.setDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if qrToken != nil && !qrToken.IsConsumed() && status != PendingQR {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"qr token",
			fmt.Errorf("live token on an order in %s", status),
		)
	}
	if returnedFrom != nil && status != Returned {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"returned from",
			fmt.Errorf("set on an order in %s", status),
		)
	}
	if version < 0 {
		return nil, errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}

	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Scope() Scope {
	return o.scope
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// QRToken returns the issued token, consumed or not; nil if none was ever issued.
func (o *Order) QRToken() *QRToken {
	if o.qrToken == nil {
		return nil
	}
	t := *o.qrToken
	return &t
}

// LiveQRToken returns the token only while it can still be presented.
func (o *Order) LiveQRToken() *QRToken {
	if o.qrToken == nil || o.qrToken.IsConsumed() {
		return nil
	}
	return o.QRToken()
}

func (o *Order) ReturnedFrom() *Status {
	if o.returnedFrom == nil {
		return nil
	}
	s := *o.returnedFrom
	return &s
}

func (o *Order) Version() int {
	return o.version
}

// Events returns the status changes recorded since the order was loaded.
func (o *Order) Events() []StatusChangedEvent {
	return append([]StatusChangedEvent(nil), o.events...)
}

func (o *Order) ClearEvents() {
	o.events = nil
}

// Clone returns an independent snapshot. Workflow services mutate clones only.
func (o *Order) Clone() *Order {
	c := *o
	c.qrToken = o.QRToken()
	c.returnedFrom = o.ReturnedFrom()
	c.events = o.Events()
	return &c
}

// TransitionTo moves the order along a legal pair of the status table.
//
// Side effects bound to the status itself:
//   - entering Returned records the stage the order came from
//   - leaving Returned forgets it
//   - leaving PendingQR for anything but Closed revokes the live QR token
//
// Role checks are not performed here.
func (o *Order) TransitionTo(to Status, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	from := o.status
	if !from.CanTransitionTo(to) {
		return errs.NewInvalidTransitionError("order", from.String(), to.String())
	}

	switch {
	case to == Returned:
		returnedFrom := from
		o.returnedFrom = &returnedFrom
	case from == Returned:
		o.returnedFrom = nil
	}

	if from == PendingQR && to != Closed && o.qrToken != nil {
		revoked := o.qrToken.consume()
		o.qrToken = &revoked
	}

	o.status = to
	if from != to {
		o.events = append(o.events, StatusChangedEvent{
			OrderID:    o.id,
			From:       from,
			To:         to,
			OccurredAt: at.UTC(),
		})
	}
	return nil
}

// AttachQRToken binds a freshly issued token. Any previous token is superseded.
func (o *Order) AttachQRToken(token QRToken) error {
	if o.status != PendingQR {
		return errs.NewInvalidTransitionError("order qr token", o.status.String(), PendingQR.String())
	}
	if token.IsConsumed() || token.Value() == "" {
		return errs.NewValueIsInvalidError("qr token")
	}
	o.qrToken = &token
	return nil
}

// ConsumeQRToken marks the live token as used.
func (o *Order) ConsumeQRToken() error {
	if o.qrToken == nil || o.qrToken.IsConsumed() {
		return errs.NewValueIsRequiredError("live qr token")
	}
	consumed := o.qrToken.consume()
	o.qrToken = &consumed
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("created by", err)
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setScope(scope Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	o.scope = scope
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	if details.ScheduledDate != nil {
		scheduled := details.ScheduledDate.UTC()
		details.ScheduledDate = &scheduled
	}
	o.details = details
	return nil
}
