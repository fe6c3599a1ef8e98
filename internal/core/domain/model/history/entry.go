package history

import (
	"errors"
	"strings"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/errs"
)

// Action names what happened to an order. Status transitions use the capability
// action name (Submit, Approve, ...); the rest are listed here.
type Action string

const (
	Created            Action = "Created"
	TaskAssigned       Action = "TaskAssigned"
	TaskStatusChanged  Action = "TaskStatusChanged"
	AllTasksCompleted  Action = "AllTasksCompleted"
	QRVerified         Action = "QRVerified"
	AdminOverrideClose Action = "AdminOverrideClose"
	QRReissued         Action = "QRReissued"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one append-only line of an order's audit trail. FromStatus and ToStatus
// hold wire literals and are empty for actions that do not change the order status.
type Entry struct {
	orderID    kernel.UUID
	action     Action
	fromStatus string
	toStatus   string
	userID     kernel.UUID
	userRole   kernel.Role
	timestamp  time.Time
	notes      string

	isConstructed bool
}

// NewEntry records action on orderID performed by actor.
func NewEntry(
	orderID kernel.UUID,
	action Action,
	fromStatus, toStatus string,
	actor kernel.Actor,
	timestamp time.Time,
	notes string,
) (Entry, error) {
	if err := actor.Validate(); err != nil {
		return Entry{}, err
	}
	return RestoreEntry(orderID, action, fromStatus, toStatus, actor.ID(), actor.Role(), timestamp, notes)
}

// RestoreEntry rebuilds an entry read from persistence.
func RestoreEntry(
	orderID kernel.UUID,
	action Action,
	fromStatus, toStatus string,
	userID kernel.UUID,
	userRole kernel.Role,
	timestamp time.Time,
	notes string,
) (Entry, error) {
	var errList []error
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("order id", err))
	}
	if strings.TrimSpace(string(action)) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("action"))
	}
	if err := userID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("user id", err))
	}
	if err := userRole.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Entry{}, err
	}

	return Entry{
		orderID:       orderID,
		action:        action,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		userID:        userID,
		userRole:      userRole,
		timestamp:     timestamp.UTC(),
		notes:         notes,
		isConstructed: true,
	}, nil
}

func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e Entry) OrderID() kernel.UUID {
	return e.orderID
}

func (e Entry) Action() Action {
	return e.action
}

func (e Entry) FromStatus() string {
	return e.fromStatus
}

func (e Entry) ToStatus() string {
	return e.toStatus
}

func (e Entry) UserID() kernel.UUID {
	return e.userID
}

func (e Entry) UserRole() kernel.Role {
	return e.userRole
}

func (e Entry) Timestamp() time.Time {
	return e.timestamp
}

func (e Entry) Notes() string {
	return e.notes
}
