package commands

import (
	"errors"
	"fmt"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/errs"
	"jinbbq/internal/pkg/guard"
)

var ErrChangeCartQuantityCommandIsNotConstructed = errors.New(
	"ChangeCartQuantityCommand must be created via NewChangeCartQuantityCommand constructor",
)

// QuantityChange is the direction of a one-unit cart adjustment.
type QuantityChange int

const (
	Increase QuantityChange = iota + 1
	Decrease
)

func (q QuantityChange) validate() error {
	if q != Increase && q != Decrease {
		return errs.NewValueIsInvalidErrorWithCause("quantity change", fmt.Errorf("%d is not a valid change", q))
	}
	return nil
}

// ChangeCartQuantityCommand adds or removes one unit of a line item.
// Decreasing the last unit removes the line; unknown items are ignored.
type ChangeCartQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID string
	menuItemID kernel.UUID
	change     QuantityChange

	guard guard.ConstructorGuard
}

func NewChangeCartQuantityCommand(
	customerID string,
	menuItemID kernel.UUID,
	change QuantityChange,
) (ChangeCartQuantityCommand, error) {
	cmd := ChangeCartQuantityCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMenuItemID(menuItemID),
		cmd.setChange(change),
	); err != nil {
		return ChangeCartQuantityCommand{}, err
	}

	return cmd, nil
}

func (c ChangeCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartQuantityCommandIsNotConstructed)
}

func (c ChangeCartQuantityCommand) CustomerID() string      { return c.customerID }
func (c ChangeCartQuantityCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c ChangeCartQuantityCommand) Change() QuantityChange  { return c.change }

func (c *ChangeCartQuantityCommand) setCustomerID(customerID string) error {
	if err := validateCustomerID(customerID); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *ChangeCartQuantityCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *ChangeCartQuantityCommand) setChange(change QuantityChange) error {
	if err := change.validate(); err != nil {
		return err
	}
	c.change = change
	return nil
}
