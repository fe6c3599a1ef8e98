package ports

import (
	"context"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/task"
)

// TaskFilter narrows GetAll. Nil fields do not filter.
type TaskFilter struct {
	OrderID      *kernel.UUID
	TechnicianID *kernel.UUID
	Status       *task.Status
}

// TaskRepository defines the persistence contract for technician tasks.
// Tasks are never deleted.
type TaskRepository interface {
	Add(ctx context.Context, t *task.Task) error
	Update(ctx context.Context, t *task.Task) error

	// Get retrieves a task by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetAllForOrder retrieves every task ever assigned on orderID, oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*task.Task, error)

	GetAll(ctx context.Context, filter TaskFilter) ([]*task.Task, error)
}
