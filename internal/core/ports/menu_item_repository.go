package ports

import (
	"context"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for catalog entries.
// Listing and searching the catalog is served by query handlers instead.
type MenuItemRepository interface {
	// Add persists a new menu item with its customization templates.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update replaces the stored attributes of an existing menu item.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by identifier.
	// Returns errs.ErrObjectNotFound when no item has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
}
