package menu

import (
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/errs"
)

// defaultMaxQuantity applies to quantity options created without a limit.
const defaultMaxQuantity = 1

// CustomizationOption is a single modifier such as "Extra Egg" or "Fried Rice".
// Its name identifies it within its category.
//
// Invariants:
//   - checkmark options hold a current quantity of 0 or 1
//   - quantity options hold a current quantity in [0, MaxQuantity]
//
// Mutators clamp instead of failing: increasing at the limit and decreasing at
// zero are no-ops.
type CustomizationOption struct {
	name            string
	additionalCost  kernel.Money
	selectionType   SelectionType
	maxQuantity     int
	currentQuantity int
}

// NewCustomizationOption builds an unselected option. For quantity options a
// maxQuantity below 1 falls back to 1; checkmark options always have a limit of 1.
func NewCustomizationOption(
	name string,
	additionalCost kernel.Money,
	selectionType SelectionType,
	maxQuantity int,
) (CustomizationOption, error) {
	if name == "" {
		return CustomizationOption{}, errs.NewValueIsRequiredError("option name")
	}
	if err := selectionType.Validate(); err != nil {
		return CustomizationOption{}, err
	}
	if err := additionalCost.ValidateCents("additional cost"); err != nil {
		return CustomizationOption{}, err
	}

	if selectionType == Checkmark || maxQuantity < 1 {
		maxQuantity = defaultMaxQuantity
	}

	return CustomizationOption{
		name:           name,
		additionalCost: additionalCost,
		selectionType:  selectionType,
		maxQuantity:    maxQuantity,
	}, nil
}

func (o CustomizationOption) Name() string { return o.name }
func (o CustomizationOption) AdditionalCost() kernel.Money { return o.additionalCost }
func (o CustomizationOption) SelectionType() SelectionType { return o.selectionType }
func (o CustomizationOption) MaxQuantity() int { return o.maxQuantity }
func (o CustomizationOption) CurrentQuantity() int { return o.currentQuantity }

// IsSelected reports whether the option contributes to the item.
func (o CustomizationOption) IsSelected() bool {
	return o.currentQuantity > 0
}

// Increase adds one unit unless the option is already at its limit.
func (o *CustomizationOption) Increase() {
	if o.currentQuantity >= o.maxQuantity {
		return
	}
	o.currentQuantity++
}

// Decrease removes one unit unless the option is already at zero.
func (o *CustomizationOption) Decrease() {
	if o.currentQuantity <= 0 {
		return
	}
	o.currentQuantity--
}

// Toggle flips a checkmark option between 0 and 1. Quantity options ignore it.
func (o *CustomizationOption) Toggle() {
	if o.selectionType != Checkmark {
		return
	}
	if o.currentQuantity > 0 {
		o.currentQuantity = 0
		return
	}
	o.currentQuantity = 1
}

// Set clamps q into the valid range for the option and stores it.
func (o *CustomizationOption) Set(q int) {
	switch {
	case q < 0:
		q = 0
	case q > o.maxQuantity:
		q = o.maxQuantity
	}
	o.currentQuantity = q
}

// Contribution is the price delta of the current selection:
// cost for a selected checkmark, cost × quantity for a quantity option.
func (o CustomizationOption) Contribution() kernel.Money {
	if o.selectionType == Checkmark {
		if o.currentQuantity > 0 {
			return o.additionalCost
		}
		return kernel.Zero()
	}
	return o.additionalCost.Times(o.currentQuantity)
}

func (o CustomizationOption) reset() CustomizationOption {
	o.currentQuantity = 0
	return o
}
