package ports

import (
	"context"

	"installation/internal/core/domain/model/order"
)

// EventPublisher delivers committed order status changes to other services.
// Publishing happens after commit, so a failure never undoes a transition.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, events ...order.StatusChangedEvent) error
}
