package commands

import (
	"context"
	"fmt"
	"strings"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/services"
	"jinbbq/internal/core/ports"
	"jinbbq/internal/pkg/errs"
)

var (
	// ErrMenuItemIsUnavailable is returned when adding an item the kitchen has switched off.
	ErrMenuItemIsUnavailable = errs.NewValueIsInvalidError("menu item is unavailable")

	// ErrRequiredCustomizationMissing is returned when required categories are
	// enforced and a selection leaves one of them empty.
	ErrRequiredCustomizationMissing = errs.NewValueIsRequiredError("customization")
)

// AddToCartCommandHandler prices a customized menu item and merges it into the
// customer's cart. A menu item already in the cart only gains quantity, and
// only when the new selection resolves to the price of the existing line;
// otherwise cart.ErrUnitPriceMismatch is returned.
type AddToCartCommandHandler struct {
	menuItems       MenuItemReader
	carts           ports.CartStore
	resolver        services.CustomizationResolver
	enforceRequired bool
}

// NewAddToCartCommandHandler creates the handler. When enforceRequired is set,
// selections that leave a required customization category empty are rejected.
func NewAddToCartCommandHandler(
	menuItems MenuItemReader,
	carts ports.CartStore,
	enforceRequired bool,
) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		menuItems:       menuItems,
		carts:           carts,
		resolver:        services.NewCustomizationResolver(),
		enforceRequired: enforceRequired,
	}
}

func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.menuItems.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}
	if !item.IsAvailable() {
		return ErrMenuItemIsUnavailable
	}

	quote, err := h.resolver.Quote(item, cmd.Selections())
	if err != nil {
		return err
	}
	if h.enforceRequired && len(quote.MissingRequired) > 0 {
		return fmt.Errorf("%w: %s", ErrRequiredCustomizationMissing, strings.Join(quote.MissingRequired, ", "))
	}

	return h.carts.Update(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		return c.AddPriced(item, quote.UnitPrice)
	})
}
