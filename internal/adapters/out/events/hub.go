// Package events distributes committed order changes inside the process and
// forwards them to external brokers.
package events

import (
	"context"
	"sync"

	"jinbbq/internal/core/ports"
)

const defaultBuffer = 16

type subscriber struct {
	filter ports.OrderFilter
	ch     chan ports.OrderChange
}

// Hub broadcasts order changes to subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the change.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	buffer int
}

func NewHub() *Hub {
	return NewHubWithBuffer(defaultBuffer)
}

func NewHubWithBuffer(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[*subscriber]struct{}),
		buffer: buffer,
	}
}

func (h *Hub) Publish(_ context.Context, change ports.OrderChange) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if !sub.filter.Matches(change.CustomerID) {
			continue
		}
		select {
		case sub.ch <- change:
		default:
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context, filter ports.OrderFilter) <-chan ports.OrderChange {
	sub := &subscriber{
		filter: filter,
		ch:     make(chan ports.OrderChange, h.buffer),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, sub)
		close(sub.ch)
		h.mu.Unlock()
	}()

	return sub.ch
}

// Subscribers reports the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
