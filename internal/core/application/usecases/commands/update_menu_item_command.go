package commands

import (
	"errors"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand replaces the attributes of a catalog entry. Carts and
// orders that already hold the item keep their price snapshot.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	attributes menu.Attributes

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(menuItemID kernel.UUID, attributes menu.Attributes) (UpdateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return UpdateMenuItemCommand{
		menuItemID: menuItemID,
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID     { return c.menuItemID }
func (c UpdateMenuItemCommand) Attributes() menu.Attributes { return c.attributes }
