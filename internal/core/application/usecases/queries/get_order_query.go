package queries

import (
	"errors"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order. Customers may only read their own orders.
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID string
	staff      bool

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, customerID string, staff bool) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		staff:      staff,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) CustomerID() string   { return q.customerID }
func (q GetOrderQuery) IsStaff() bool        { return q.staff }
