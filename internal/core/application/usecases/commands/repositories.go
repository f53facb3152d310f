// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/core/ports"
	"jinbbq/internal/pkg/errs"
)

// ErrCustomerIDIsRequired is returned by every command acting on a customer session.
var ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customer id")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuItemUoW manages transactions for catalog maintenance.
	MenuItemUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuItemUoWFactory creates new menu item unit of work instances.
	MenuItemUoWFactory interface {
		Create() MenuItemUoW
	}

	// MenuItemReader loads catalog entries outside of a transaction. Cart
	// commands only read the catalog.
	MenuItemReader interface {
		Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
	}
)

func validateCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}
	return nil
}
