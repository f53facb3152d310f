package commands

import (
	"errors"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out a customer's cart into a new order with the
// customer's tip choice. A nil tax rate uses the configured default.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	tip, _ := pricing.PresetTip(pricing.TipFifteenPercent)
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, tip, nil)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	tip        pricing.Tip
	taxRate    *pricing.TaxRate

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID string,
	tip pricing.Tip,
	taxRate *pricing.TaxRate,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{tip: tip, taxRate: taxRate, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) CustomerID() string {
	return c.customerID
}

func (c PlaceOrderCommand) Tip() pricing.Tip {
	return c.tip
}

// TaxRate returns the requested rate, if any.
func (c PlaceOrderCommand) TaxRate() (pricing.TaxRate, bool) {
	if c.taxRate == nil {
		return pricing.TaxRate{}, false
	}
	return *c.taxRate, true
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID string) error {
	if err := validateCustomerID(customerID); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
