package commands

import (
	"errors"
	"slices"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand puts one unit of a menu item, optionally customized, into a
// customer's cart.
//
// Example:
//
//	cmd, err := NewAddToCartCommand(customerID, itemID, []menu.Selection{
//	    {Category: "Replace Rice With", Option: "Fried Rice", Quantity: 1},
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID string
	menuItemID kernel.UUID
	selections []menu.Selection

	guard guard.ConstructorGuard
}

// NewAddToCartCommand validates the customer and menu item identifiers.
// Selections are checked against the menu item when the command is handled.
func NewAddToCartCommand(customerID string, menuItemID kernel.UUID, selections []menu.Selection) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		selections: slices.Clone(selections),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) CustomerID() string {
	return c.customerID
}

func (c AddToCartCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Selections returns a copy of the requested customization options.
func (c AddToCartCommand) Selections() []menu.Selection {
	return slices.Clone(c.selections)
}

func (c *AddToCartCommand) setCustomerID(customerID string) error {
	if err := validateCustomerID(customerID); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}
