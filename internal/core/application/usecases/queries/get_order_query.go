// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the REST surface; they never go through
// the unit of work.
package queries

import (
	"errors"
	"time"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order by id. The HTTP layer also uses it to answer
// every command with the order's state after commit.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderView is the read model of an order. The QR token itself is never exposed
// here; HasLiveQRToken tells clients whether GetOrderQR will return an image.
type OrderView struct {
	ID             kernel.UUID
	Status         order.Status
	BranchID       int
	DepartmentID   int
	Priority       order.Priority
	City           string
	Address        string
	ScheduledDate  *time.Time
	QuotationID    string
	InvoiceID      string
	CustomerID     string
	CreatedBy      kernel.UUID
	CreatedAt      time.Time
	ReturnedFrom   *order.Status
	HasLiveQRToken bool
	Version        int
}
