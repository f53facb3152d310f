package order

import (
	"errors"
	"slices"
	"time"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/pkg/errs"
)

// CancellationWindow is how long after placement a customer may still cancel.
// The bound is inclusive.
const CancellationWindow = 5 * time.Second

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when checking out an empty cart.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order line items")
)

// Charges are the tax rate and the resolved tip fixed at checkout. A placed
// order is always priced with its own charges, never with the current default
// rate.
type Charges struct {
	TaxRate pricing.TaxRate
	Tip     kernel.Money
}

// Order is a checked-out cart. Apart from its status it never changes after
// creation, so it is safe to hand the same order to many readers.
//
// Invariants:
//   - identifier is a valid UUID
//   - customer identifier is not empty
//   - at least one line item, each copied from the cart at placement
//   - status is valid
type Order struct {
	id         kernel.UUID
	customerID string
	items      []cart.LineItem
	charges    Charges
	status     Status
	placedAt   time.Time

	isConstructed bool
}

// NewOrder places an order from cart line items. The items are copied; the
// caller stays free to clear or reuse its slice.
//
// Example:
//
//	charges := order.Charges{TaxRate: rate, Tip: tip.Amount(subtotal)}
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, c.Snapshot(), charges, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.UUID,
	customerID string,
	items []cart.LineItem,
	charges Charges,
	placedAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, customerID, items, charges, OrderPlaced, placedAt)
}

// RestoreOrder rebuilds an order from persistence with its stored status.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []cart.LineItem,
	charges Charges,
	status Status,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		charges:       charges,
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the line items.
func (o *Order) Items() []cart.LineItem {
	return slices.Clone(o.items)
}

// Charges returns the tax rate and tip fixed at checkout.
func (o *Order) Charges() Charges {
	return o.charges
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// IsOwnedBy reports whether customerID placed the order.
func (o *Order) IsOwnedBy(customerID string) bool {
	return customerID != "" && o.customerID == customerID
}

// UpdateStatus overwrites the status with any valid value. Staff drive the
// kitchen workflow and may correct mistakes, so no transition order is enforced.
func (o *Order) UpdateStatus(status Status) error {
	return o.setStatus(status)
}

// CanCancel reports whether Cancel would apply at the given instant.
func (o *Order) CanCancel(now time.Time) bool {
	return o.status == OrderPlaced && now.Sub(o.placedAt) <= CancellationWindow
}

// Cancel moves the order to Cancelled when it is still orderPlaced and now is
// no later than CancellationWindow after placement. It reports whether the
// cancellation applied; a late request leaves the order untouched.
func (o *Order) Cancel(now time.Time) bool {
	if !o.CanCancel(now) {
		return false
	}
	o.status = Cancelled
	return true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []cart.LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
