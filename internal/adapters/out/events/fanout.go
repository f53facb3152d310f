package events

import (
	"context"

	"jinbbq/internal/core/ports"

	"go.uber.org/zap"
)

// Fanout hands every change to each publisher in turn. A failing publisher
// is logged and does not stop the others.
type Fanout struct {
	publishers []ports.OrderEventPublisher
	logger     *zap.SugaredLogger
}

func NewFanout(logger *zap.SugaredLogger, publishers ...ports.OrderEventPublisher) *Fanout {
	return &Fanout{publishers: publishers, logger: logger}
}

func (f *Fanout) Publish(ctx context.Context, change ports.OrderChange) error {
	for _, p := range f.publishers {
		if err := p.Publish(ctx, change); err != nil {
			f.logger.Errorw("publish order change",
				"orderID", change.OrderID.String(),
				"status", change.Status.String(),
				"error", err,
			)
		}
	}
	return nil
}
