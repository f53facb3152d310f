package queries

import (
	"errors"

	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/pkg/errs"
	"jinbbq/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery prices a customer's cart with a tip selection. A nil tax rate
// uses the configured default.
type GetCartQuery struct {
	customerID string
	tip        pricing.Tip
	taxRate    *pricing.TaxRate

	guard guard.ConstructorGuard
}

func NewGetCartQuery(customerID string, tip pricing.Tip, taxRate *pricing.TaxRate) (GetCartQuery, error) {
	if customerID == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("customer id")
	}
	return GetCartQuery{
		customerID: customerID,
		tip:        tip,
		taxRate:    taxRate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CustomerID() string {
	return q.customerID
}

func (q GetCartQuery) Tip() pricing.Tip {
	return q.tip
}

// TaxRate returns the requested rate, if any.
func (q GetCartQuery) TaxRate() (pricing.TaxRate, bool) {
	if q.taxRate == nil {
		return pricing.TaxRate{}, false
	}
	return *q.taxRate, true
}

type GetCartQueryResponse struct {
	CustomerID string
	Items      []LineItemResponse
	Breakdown  pricing.Breakdown
}
