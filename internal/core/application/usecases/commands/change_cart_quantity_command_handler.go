package commands

import (
	"context"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/ports"
)

type ChangeCartQuantityCommandHandler struct {
	carts ports.CartStore
}

func NewChangeCartQuantityCommandHandler(carts ports.CartStore) ChangeCartQuantityCommandHandler {
	return ChangeCartQuantityCommandHandler{carts: carts}
}

func (h ChangeCartQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeCartQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.carts.Update(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		if cmd.Change() == Increase {
			c.Increase(cmd.MenuItemID())
		} else {
			c.Decrease(cmd.MenuItemID())
		}
		return nil
	})
}
