package commands

import (
	"context"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/ports"
)

type ClearCartCommandHandler struct {
	carts ports.CartStore
}

func NewClearCartCommandHandler(carts ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{carts: carts}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.carts.Update(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}
