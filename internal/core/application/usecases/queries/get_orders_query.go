package queries

import (
	"errors"

	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/pkg/errs"
	"jinbbq/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders visible to the caller: a customer sees their own
// orders, staff see every order. An optional status narrows the result.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(customerID, false, nil)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders in progress\n", len(resp.InProgress))
type GetOrdersQuery struct {
	customerID string
	staff      bool
	status     *order.Status

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(customerID string, staff bool, status *order.Status) (GetOrdersQuery, error) {
	if customerID == "" && !staff {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("customer id")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	return GetOrdersQuery{
		customerID: customerID,
		staff:      staff,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) CustomerID() string { return q.customerID }
func (q GetOrdersQuery) IsStaff() bool      { return q.staff }

// Status returns the requested status filter, if any.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

// GetOrdersQueryResponse groups orders the way the order history screen shows
// them. InProgress holds orderPlaced, preparing and readyForPickup orders.
type GetOrdersQueryResponse struct {
	InProgress []OrderResponse
	Completed  []OrderResponse
	Cancelled  []OrderResponse
}
