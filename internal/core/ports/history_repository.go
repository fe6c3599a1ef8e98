package ports

import (
	"context"

	"installation/internal/core/domain/model/history"
	"installation/internal/core/domain/model/kernel"
)

// HistoryRepository is the append-only order audit trail.
type HistoryRepository interface {
	Append(ctx context.Context, entries ...history.Entry) error

	// GetAllForOrder returns the trail of orderID in the order it was written.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]history.Entry, error)
}
