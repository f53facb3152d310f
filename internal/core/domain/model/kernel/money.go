package kernel

import (
	"fmt"
	"strings"

	"jinbbq/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// displayPlaces is the number of fractional digits shown to customers.
const displayPlaces = 2

// Money is a non-negative amount in the restaurant's single currency.
// The zero value is $0.00 and is valid.
//
// Arithmetic keeps full precision:
//
//	subtotal, _ := kernel.ParseMoney("43.97")
//	tax := subtotal.MulRate(decimal.RequireFromString("0.10")) // 4.397
//	tax.Display()                                               // "$4.40"
type Money struct {
	amount decimal.Decimal
}

// Zero returns $0.
func Zero() Money {
	return Money{}
}

// NewMoney wraps a decimal amount, rejecting negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MustMoney is NewMoney for literals known to be valid; it panics otherwise.
// Unlike ParseMoney it keeps sub-cent digits, so computed amounts such as
// 4.397 can be written down in tests.
func MustMoney(amount string) Money {
	m, err := parseAmount(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney converts client or seed input such as "14.99" or "$14.99".
// Non-numeric, negative and sub-cent input is rejected here so the pricing code
// never sees it.
func ParseMoney(s string) (Money, error) {
	m, err := parseAmount(s)
	if err != nil {
		return Money{}, err
	}
	if err = m.ValidateCents("amount"); err != nil {
		return Money{}, err
	}
	return m, nil
}

func parseAmount(s string) (Money, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "$")
	if trimmed == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a number", s))
	}
	return NewMoney(amount)
}

// ValidateCents rejects amounts with digits below one cent. Prices, option
// costs and custom tips are entered in whole cents; only derived amounts such
// as tax carry more precision.
func (m Money) ValidateCents(name string) error {
	if !m.amount.Equal(m.amount.Round(displayPlaces)) {
		return errs.NewValueIsInvalidErrorWithCause(
			name,
			fmt.Errorf("%s has more than %d decimal places", m.amount.String(), displayPlaces),
		)
	}
	return nil
}

// Amount returns the exact decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a non-negative count.
func (m Money) Times(count int) Money {
	if count <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(count)))}
}

// MulRate returns m multiplied by a fractional rate such as a tax or tip percentage.
// Negative rates yield zero.
func (m Money) MulRate(rate decimal.Decimal) Money {
	if rate.IsNegative() {
		return Money{}
	}
	return Money{amount: m.amount.Mul(rate)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares exact amounts, so 4.397 and 4.3970 are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Rounded returns the amount rounded half away from zero to cents.
func (m Money) Rounded() decimal.Decimal {
	return m.amount.Round(displayPlaces)
}

// String renders the rounded amount without a currency sign, e.g. "48.37".
func (m Money) String() string {
	return m.amount.StringFixed(displayPlaces)
}

// Display renders the rounded amount for customers, e.g. "$48.37".
func (m Money) Display() string {
	return "$" + m.String()
}
