package commands

import (
	"context"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/ports"
)

type RemoveFromCartCommandHandler struct {
	carts ports.CartStore
}

func NewRemoveFromCartCommandHandler(carts ports.CartStore) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{carts: carts}
}

// Handle removes one unit. Removing an item that is not in the cart is a no-op.
func (h RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.carts.Update(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		c.Remove(cmd.MenuItemID())
		return nil
	})
}
