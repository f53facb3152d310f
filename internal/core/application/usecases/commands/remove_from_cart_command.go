package commands

import (
	"errors"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand takes one unit of a menu item out of the cart.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	customerID string
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveFromCartCommand(customerID string, menuItemID kernel.UUID) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

func (c RemoveFromCartCommand) CustomerID() string      { return c.customerID }
func (c RemoveFromCartCommand) MenuItemID() kernel.UUID { return c.menuItemID }

func (c *RemoveFromCartCommand) setCustomerID(customerID string) error {
	if err := validateCustomerID(customerID); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RemoveFromCartCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}
