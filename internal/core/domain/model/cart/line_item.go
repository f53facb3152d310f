package cart

import (
	"fmt"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/errs"
)

// LineItem is one aggregated (menu item, quantity) pair. It is a value: copies
// never share state, which is what lets orders snapshot a cart.
type LineItem struct {
	menuItemID kernel.UUID
	title      string
	unitPrice  kernel.Money
	imageRef   string
	quantity   int
}

// RestoreLineItem rebuilds a line item from persistence.
func RestoreLineItem(menuItemID kernel.UUID, title string, unitPrice kernel.Money, imageRef string, quantity int) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	return LineItem{
		menuItemID: menuItemID,
		title:      title,
		unitPrice:  unitPrice,
		imageRef:   imageRef,
		quantity:   quantity,
	}, nil
}

func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

func (li LineItem) Title() string {
	return li.title
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) ImageRef() string {
	return li.imageRef
}

func (li LineItem) Quantity() int {
	return li.quantity
}

// LineTotal is unit price × quantity at full precision.
func (li LineItem) LineTotal() kernel.Money {
	return li.unitPrice.Times(li.quantity)
}
