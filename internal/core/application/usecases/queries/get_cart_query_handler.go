package queries

import (
	"context"

	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/core/domain/services"
)

// GetCartQueryHandler returns the cart with its subtotal, tax, tip and total.
type GetCartQueryHandler struct {
	carts       CartReader
	calculator  services.PricingCalculator
	defaultRate pricing.TaxRate
}

func NewGetCartQueryHandler(carts CartReader, defaultRate pricing.TaxRate) GetCartQueryHandler {
	return GetCartQueryHandler{
		carts:       carts,
		calculator:  services.NewPricingCalculator(),
		defaultRate: defaultRate,
	}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	c, err := h.carts.Get(ctx, query.CustomerID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	rate, ok := query.TaxRate()
	if !ok {
		rate = h.defaultRate
	}

	items := c.Items()
	return GetCartQueryResponse{
		CustomerID: query.CustomerID(),
		Items:      lineItemResponses(items),
		Breakdown:  h.calculator.Breakdown(items, rate, query.Tip()),
	}, nil
}
