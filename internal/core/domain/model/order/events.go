package order

import (
	"time"

	"installation/internal/core/domain/model/kernel"
)

// StatusChangedEvent is recorded by the aggregate on every status change and
// published after the unit of work commits.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}
