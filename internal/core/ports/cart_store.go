package ports

import (
	"context"
	"time"

	"jinbbq/internal/core/domain/model/cart"
)

// CartStore keeps one in-progress cart per customer session.
//
// Carts are session state and are not persisted. An implementation must give
// each customer a single logical owner: Update calls for the same customer
// never run concurrently.
type CartStore interface {
	// Get returns a copy of the customer's cart. A customer without a cart
	// gets an empty one.
	Get(ctx context.Context, customerID string) (*cart.Cart, error)

	// Update runs fn with exclusive access to the customer's cart. Changes made
	// by fn are kept even when fn returns an error, so callers that need
	// all-or-nothing semantics must mutate only after their last failure point.
	Update(ctx context.Context, customerID string, fn func(c *cart.Cart) error) error

	// Evict drops carts not touched since idleSince and reports how many
	// were removed.
	Evict(ctx context.Context, idleSince time.Time) (int, error)
}
