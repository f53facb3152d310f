package menu

import (
	"fmt"

	"jinbbq/internal/pkg/errs"
)

// SelectionType decides how an option is picked and priced.
type SelectionType int

const (
	// UnknownSelection is the invalid zero value.
	UnknownSelection SelectionType = iota

	// Checkmark options are either selected (1) or not (0).
	Checkmark

	// Quantity options may be picked several times up to their max quantity.
	Quantity
)

// String returns the wire name of the selection type.
func (s SelectionType) String() string {
	switch s {
	case Checkmark:
		return "checkmark"
	case Quantity:
		return "quantity"
	default:
		return "unknown"
	}
}

// Validate rejects UnknownSelection and out-of-range values.
func (s SelectionType) Validate() error {
	if s != Checkmark && s != Quantity {
		return errs.NewValueIsInvalidErrorWithCause("selection type", fmt.Errorf("%d is not a valid selection type", s))
	}
	return nil
}

// ParseSelectionType maps "checkmark" and "quantity" to their values.
func ParseSelectionType(s string) (SelectionType, error) {
	switch s {
	case "checkmark":
		return Checkmark, nil
	case "quantity":
		return Quantity, nil
	default:
		return UnknownSelection, errs.NewValueIsInvalidErrorWithCause("selection type", fmt.Errorf("%q is not a valid selection type", s))
	}
}
