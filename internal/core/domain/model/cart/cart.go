// Package cart holds the customer's in-progress selection before checkout.
//
// A Cart keeps at most one LineItem per menu item identifier: adding an item
// that is already present increments its quantity. Line items snapshot the
// title, image and unit price at the moment they are first added, so later
// catalog edits never change a cart that is already being filled. A priced add
// whose resolved unit price differs from the existing line is rejected, since
// one line cannot carry two prices.
//
// Operations addressing an identifier that is not in the cart are silent
// no-ops, and a quantity never drops below 1: decreasing the last unit removes
// the line item.
package cart

import (
	"errors"
	"fmt"
	"slices"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/errs"
)

// ErrUnitPriceMismatch is returned when an item already in the cart is added
// again with customizations that resolve to another unit price.
var ErrUnitPriceMismatch = errs.NewValueIsInvalidErrorWithCause(
	"unit price",
	errors.New("item is already in the cart at a different price"),
)

// Cart is a single customer's set of line items. It is not safe for concurrent
// use; the cart store serializes access per customer.
type Cart struct {
	customerID string
	items      []LineItem
}

// New returns an empty cart for a customer.
func New(customerID string) *Cart {
	return &Cart{customerID: customerID}
}

// CustomerID returns the owner of the cart.
func (c *Cart) CustomerID() string {
	return c.customerID
}

// Add puts one unit of the menu item into the cart at its catalog price. An
// existing line keeps its original snapshot and only gains quantity.
func (c *Cart) Add(item *menu.MenuItem) {
	if i := c.indexOf(item.ID()); i >= 0 {
		c.items[i].quantity++
		return
	}
	c.appendLine(item, item.Price())
}

// AddPriced puts one unit of the menu item into the cart at a unit price
// resolved from its customizations. When the item is already in the cart the
// price must match the existing line, otherwise ErrUnitPriceMismatch is
// returned and the cart is unchanged.
func (c *Cart) AddPriced(item *menu.MenuItem, unitPrice kernel.Money) error {
	if i := c.indexOf(item.ID()); i >= 0 {
		if !c.items[i].unitPrice.Equal(unitPrice) {
			return fmt.Errorf("%w: %s in cart at %s, requested %s",
				ErrUnitPriceMismatch, item.Title(), c.items[i].unitPrice.Display(), unitPrice.Display())
		}
		c.items[i].quantity++
		return nil
	}
	c.appendLine(item, unitPrice)
	return nil
}

func (c *Cart) appendLine(item *menu.MenuItem, unitPrice kernel.Money) {
	c.items = append(c.items, LineItem{
		menuItemID: item.ID(),
		title:      item.Title(),
		unitPrice:  unitPrice,
		imageRef:   item.ImageRef(),
		quantity:   1,
	})
}

// Remove takes one unit of the item out of the cart.
func (c *Cart) Remove(id kernel.UUID) {
	c.Decrease(id)
}

// Increase adds one unit to an item already in the cart.
func (c *Cart) Increase(id kernel.UUID) {
	if i := c.indexOf(id); i >= 0 {
		c.items[i].quantity++
	}
}

// Decrease removes one unit, deleting the line item when its last unit goes.
func (c *Cart) Decrease(id kernel.UUID) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	if c.items[i].quantity <= 1 {
		c.items = slices.Delete(c.items, i, i+1)
		return
	}
	c.items[i].quantity--
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	return slices.Clone(c.items)
}

// Snapshot returns line items that stay independent of any later cart change.
func (c *Cart) Snapshot() []LineItem {
	return c.Items()
}

// Quantity returns the quantity held for an item, or 0 when absent.
func (c *Cart) Quantity(id kernel.UUID) int {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].quantity
	}
	return 0
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	return &Cart{customerID: c.customerID, items: c.Items()}
}

func (c *Cart) indexOf(id kernel.UUID) int {
	return slices.IndexFunc(c.items, func(li LineItem) bool {
		return li.menuItemID.IsEqual(id)
	})
}
