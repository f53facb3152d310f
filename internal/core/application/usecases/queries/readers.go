// Package queries contains read-only operations for the CQRS read side.
// Catalog listings are answered with SQL against the read tables; carts and
// orders are read through their stores and priced on the fly.
package queries

import (
	"context"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/ports"
)

type (
	// MenuItemReader loads a single catalog entry.
	MenuItemReader interface {
		Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
	}

	// OrderReader loads orders outside of a transaction.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
	}

	// CartReader returns a copy of a customer's cart.
	CartReader interface {
		Get(ctx context.Context, customerID string) (*cart.Cart, error)
	}
)
