package ports

import (
	"context"
	"time"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/order"
)

// OrderChange describes a committed change to an order. Deleted changes
// carry the last known status.
type OrderChange struct {
	OrderID    kernel.UUID
	CustomerID string
	Status     order.Status
	Deleted    bool
	OccurredAt time.Time
}

// OrderEventPublisher delivers committed order changes to interested parties.
type OrderEventPublisher interface {
	Publish(ctx context.Context, change OrderChange) error
}

// OrderWatcher streams committed order changes.
type OrderWatcher interface {
	// Subscribe returns a channel of changes matching filter. The channel is
	// closed once ctx is done. Slow readers may miss changes but never block
	// writers.
	Subscribe(ctx context.Context, filter OrderFilter) <-chan OrderChange
}
