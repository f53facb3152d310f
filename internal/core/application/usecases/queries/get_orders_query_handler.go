package queries

import (
	"context"

	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/core/domain/services"
	"jinbbq/internal/core/ports"
)

var inProgressStatuses = []order.Status{order.OrderPlaced, order.Preparing, order.ReadyForPickup}

// GetOrdersQueryHandler lists orders grouped by progress. In progress orders
// are ordered by status, then newest first; the other groups newest first.
// Each order is priced with the tax rate and tip fixed at its checkout.
type GetOrdersQueryHandler struct {
	orders  OrderReader
	pricing orderPricer
}

func NewGetOrdersQueryHandler(orders OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		orders:  orders,
		pricing: orderPricer{calculator: services.NewPricingCalculator()},
	}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	filter := ports.OrderFilter{}
	if !query.IsStaff() {
		filter.CustomerID = query.CustomerID()
	}

	orders, err := h.orders.List(ctx, filter)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	if status, ok := query.Status(); ok {
		orders = order.Filter(orders, status)
	}

	resp := GetOrdersQueryResponse{
		InProgress: make([]OrderResponse, 0),
		Completed:  h.pricing.respondAll(order.Filter(orders, order.Completed)),
		Cancelled:  h.pricing.respondAll(order.Filter(orders, order.Cancelled)),
	}
	for _, s := range inProgressStatuses {
		resp.InProgress = append(resp.InProgress, h.pricing.respondAll(order.Filter(orders, s))...)
	}

	return resp, nil
}

type orderPricer struct {
	calculator services.PricingCalculator
}

func (p orderPricer) respond(o *order.Order) OrderResponse {
	items := o.Items()
	charges := o.Charges()
	return OrderResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		PlacedAt:   o.PlacedAt(),
		Items:      lineItemResponses(items),
		Breakdown:  p.calculator.Breakdown(items, charges.TaxRate, pricing.CustomTip(charges.Tip)),
	}
}

func (p orderPricer) respondAll(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, p.respond(o))
	}
	return out
}
