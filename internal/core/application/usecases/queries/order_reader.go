package queries

import (
	"context"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
)

// OrderReader loads the order aggregate for queries that need domain rules
// rather than a flat row.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
