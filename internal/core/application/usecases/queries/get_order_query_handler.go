package queries

import (
	"context"

	"jinbbq/internal/core/domain/services"
	"jinbbq/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	orders  OrderReader
	pricing orderPricer
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:  orders,
		pricing: orderPricer{calculator: services.NewPricingCalculator()},
	}
}

// Handle returns the order with its price breakdown. Another customer's order
// is reported as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if !query.IsStaff() && !o.IsOwnedBy(query.CustomerID()) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return h.pricing.respond(o), nil
}
