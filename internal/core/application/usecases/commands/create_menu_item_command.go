package commands

import (
	"errors"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds an entry to the catalog. The attributes are
// validated by the menu item constructor when the command is handled.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	attributes menu.Attributes

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(menuItemID kernel.UUID, attributes menu.Attributes) (CreateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		menuItemID: menuItemID,
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) MenuItemID() kernel.UUID     { return c.menuItemID }
func (c CreateMenuItemCommand) Attributes() menu.Attributes { return c.attributes }
