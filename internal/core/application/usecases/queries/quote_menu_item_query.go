package queries

import (
	"errors"
	"slices"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/guard"
)

var ErrQuoteMenuItemQueryIsNotConstructed = errors.New(
	"QuoteMenuItemQuery must be created via NewQuoteMenuItemQuery constructor",
)

// QuoteMenuItemQuery prices a menu item under a customization selection
// without touching the cart.
type QuoteMenuItemQuery struct {
	menuItemID kernel.UUID
	selections []menu.Selection

	guard guard.ConstructorGuard
}

func NewQuoteMenuItemQuery(menuItemID kernel.UUID, selections []menu.Selection) (QuoteMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return QuoteMenuItemQuery{}, err
	}
	return QuoteMenuItemQuery{
		menuItemID: menuItemID,
		selections: slices.Clone(selections),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrQuoteMenuItemQueryIsNotConstructed)
}

func (q QuoteMenuItemQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}

func (q QuoteMenuItemQuery) Selections() []menu.Selection {
	return slices.Clone(q.selections)
}

type QuoteMenuItemQueryResponse struct {
	MenuItemID      kernel.UUID
	BasePrice       kernel.Money
	UnitPrice       kernel.Money
	Customizations  []CustomizationCategoryResponse
	MissingRequired []string
}
