// Package pricing holds the value objects used to price a cart or an order:
// the tax rate, the customer's tip choice, and the resulting breakdown.
package pricing

import (
	"fmt"
	"slices"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TaxRate is a fraction in [0, 1], e.g. 0.10 for 10 %.
type TaxRate struct {
	rate decimal.Decimal
}

// NewTaxRate validates a fractional tax rate.
func NewTaxRate(rate decimal.Decimal) (TaxRate, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return TaxRate{}, errs.NewValueIsOutOfRangeError("tax rate", rate.String(), 0, 1)
	}
	return TaxRate{rate: rate}, nil
}

// ParseTaxRate reads a rate such as "0.083".
func ParseTaxRate(s string) (TaxRate, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return TaxRate{}, errs.NewValueIsInvalidErrorWithCause("tax rate", fmt.Errorf("%q is not a number", s))
	}
	return NewTaxRate(rate)
}

// Rate returns the fraction.
func (r TaxRate) Rate() decimal.Decimal {
	return r.rate
}

// String renders the rate as a fraction, e.g. "0.083".
func (r TaxRate) String() string {
	return r.rate.String()
}

// TipPreset is a percentage offered as a one-tap tip.
type TipPreset int

const (
	TipTenPercent     TipPreset = 10
	TipFifteenPercent TipPreset = 15
	TipTwentyPercent  TipPreset = 20
)

// TipPresets lists the offered presets in display order.
func TipPresets() []TipPreset {
	return []TipPreset{TipTenPercent, TipFifteenPercent, TipTwentyPercent}
}

// Validate rejects percentages that are not offered.
func (p TipPreset) Validate() error {
	if !slices.Contains(TipPresets(), p) {
		return errs.NewValueIsInvalidErrorWithCause("tip preset", fmt.Errorf("%d%% is not an offered preset", int(p)))
	}
	return nil
}

// Fraction returns the preset as a rate, e.g. 0.15.
func (p TipPreset) Fraction() decimal.Decimal {
	return decimal.New(int64(p), -2)
}

// Tip is the customer's tip choice. At most one selection is active: choosing
// a preset drops any custom amount and entering a custom amount drops the preset.
// The zero value means no tip.
type Tip struct {
	preset *TipPreset
	custom *kernel.Money
}

// NoTip returns a tip of zero.
func NoTip() Tip {
	return Tip{}
}

// PresetTip returns a tip selecting the given preset.
func PresetTip(p TipPreset) (Tip, error) {
	var t Tip
	if err := t.SelectPreset(p); err != nil {
		return Tip{}, err
	}
	return t, nil
}

// CustomTip returns a tip of a fixed amount.
func CustomTip(amount kernel.Money) Tip {
	var t Tip
	t.SetCustom(amount)
	return t
}

// SelectPreset activates a preset and clears any custom amount.
func (t *Tip) SelectPreset(p TipPreset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	t.preset = &p
	t.custom = nil
	return nil
}

// SetCustom activates a custom amount and clears any preset.
func (t *Tip) SetCustom(amount kernel.Money) {
	t.custom = &amount
	t.preset = nil
}

// Clear removes the tip.
func (t *Tip) Clear() {
	t.preset = nil
	t.custom = nil
}

// Preset returns the active preset, if any.
func (t Tip) Preset() (TipPreset, bool) {
	if t.preset == nil {
		return 0, false
	}
	return *t.preset, true
}

// Custom returns the active custom amount, if any.
func (t Tip) Custom() (kernel.Money, bool) {
	if t.custom == nil {
		return kernel.Zero(), false
	}
	return *t.custom, true
}

// Amount resolves the tip against a subtotal.
func (t Tip) Amount(subtotal kernel.Money) kernel.Money {
	switch {
	case t.preset != nil:
		return subtotal.MulRate(t.preset.Fraction())
	case t.custom != nil:
		return *t.custom
	default:
		return kernel.Zero()
	}
}

// Breakdown is the full price derivation of a set of line items.
// Total always equals Subtotal + Tax + Tip exactly.
type Breakdown struct {
	Subtotal kernel.Money
	TaxRate  TaxRate
	Tax      kernel.Money
	Tip      kernel.Money
	Total    kernel.Money
}
