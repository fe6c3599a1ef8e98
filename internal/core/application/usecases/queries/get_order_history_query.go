package queries

import (
	"errors"
	"time"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery reads the audit trail of one order in the order it was written.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// HistoryEntryView is one audit record. FromStatus is empty for the creation entry
// and for task assignments.
type HistoryEntryView struct {
	Action     history.Action
	FromStatus string
	ToStatus   string
	UserID     kernel.UUID
	UserRole   kernel.Role
	Timestamp  time.Time
	Notes      string
}
