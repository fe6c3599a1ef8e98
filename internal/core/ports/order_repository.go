// Package ports defines the contracts between the workflow core and its adapters:
// repositories, the unit of work, event publishing, QR rendering and metrics.
package ports

import (
	"context"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
)

// OrderFilter narrows GetAll. Nil fields do not filter.
type OrderFilter struct {
	BranchID     *int
	DepartmentID *int
	Status       *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a changed order if the stored version still equals the
	// aggregate's version, and bumps the stored version.
	// A stale aggregate fails with errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders matching filter, newest first.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// GetAllAwaitingCascade retrieves InProgress orders whose tasks are all terminal
	// and at least one of them is Completed: orders whose completion cascade
	// has not been applied yet.
	GetAllAwaitingCascade(ctx context.Context) ([]*order.Order, error)
}
