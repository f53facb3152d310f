package commands

import (
	"context"
	"time"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/core/domain/services"
	"jinbbq/internal/core/ports"
)

// PlaceOrderCommandHandler turns the customer's cart into an order.
//
// The cart stays locked while the order is persisted, so an item added
// concurrently lands either in the order or in the emptied cart afterwards.
// The cart is cleared only after the order is committed; a failed checkout
// leaves it untouched.
//
// The tax rate and the tip resolved against the subtotal are stored on the
// order, so it keeps its checkout price when the default rate changes.
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	carts       ports.CartStore
	calculator  services.PricingCalculator
	defaultRate pricing.TaxRate
	now         func() time.Time
}

// NewPlaceOrderCommandHandler creates the handler. defaultRate applies when
// the command carries no tax rate; now stamps the placement time that anchors
// the cancellation window.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartStore,
	defaultRate pricing.TaxRate,
	now func() time.Time,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		carts:       carts,
		calculator:  services.NewPricingCalculator(),
		defaultRate: defaultRate,
		now:         now,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.carts.Update(ctx, cmd.CustomerID(), func(c *cart.Cart) error {
		if c.IsEmpty() {
			return order.ErrOrderHasNoItems
		}

		items := c.Snapshot()
		o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items, h.charges(cmd, items), h.now())
		if err != nil {
			return err
		}

		if err = h.save(ctx, o); err != nil {
			return err
		}

		c.Clear()
		return nil
	})
}

func (h PlaceOrderCommandHandler) charges(cmd PlaceOrderCommand, items []cart.LineItem) order.Charges {
	rate, ok := cmd.TaxRate()
	if !ok {
		rate = h.defaultRate
	}
	return order.Charges{
		TaxRate: rate,
		Tip:     h.calculator.Tip(h.calculator.Subtotal(items), cmd.Tip()),
	}
}

func (h PlaceOrderCommandHandler) save(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
