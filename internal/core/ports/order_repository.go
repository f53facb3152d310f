// Package ports defines the contracts between the application core and its
// adapters: persistence, the cart session store, and order change streams.
// These interfaces establish dependency inversion and keep use cases testable.
package ports

import (
	"context"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/order"
)

// OrderFilter narrows order listings and change streams.
// The zero value matches every order.
type OrderFilter struct {
	// CustomerID restricts results to one customer when set.
	CustomerID string
}

// Matches reports whether an order placed by customerID passes the filter.
func (f OrderFilter) Matches(customerID string) bool {
	return f.CustomerID == "" || f.CustomerID == customerID
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order together with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Line items are
	// immutable after placement and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ErrObjectNotFound when no order has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Delete removes an order and its line items permanently.
	Delete(ctx context.Context, aggregate *order.Order) error
}
