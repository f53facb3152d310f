package menu

import (
	"fmt"

	"jinbbq/internal/pkg/errs"
)

// CustomizationCategory groups options under a heading such as "Replace Rice With".
// Its name identifies it within a menu item.
type CustomizationCategory struct {
	name     string
	required bool
	options  []CustomizationOption
}

// NewCustomizationCategory validates that the category is named and that option
// names are unique within it. Options keep their given order.
func NewCustomizationCategory(name string, required bool, options []CustomizationOption) (CustomizationCategory, error) {
	if name == "" {
		return CustomizationCategory{}, errs.NewValueIsRequiredError("category name")
	}

	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if opt.name == "" {
			return CustomizationCategory{}, errs.NewValueIsRequiredError("option name")
		}
		if _, dup := seen[opt.name]; dup {
			return CustomizationCategory{}, errs.NewValueIsInvalidErrorWithCause(
				"option name",
				fmt.Errorf("%q appears twice in category %q", opt.name, name),
			)
		}
		seen[opt.name] = struct{}{}
	}

	return CustomizationCategory{
		name:     name,
		required: required,
		options:  append([]CustomizationOption(nil), options...),
	}, nil
}

func (c CustomizationCategory) Name() string { return c.name }
func (c CustomizationCategory) IsRequired() bool { return c.required }

// Options returns a copy of the options in display order.
func (c CustomizationCategory) Options() []CustomizationOption {
	return append([]CustomizationOption(nil), c.options...)
}

// HasSelection reports whether any option in the category is selected.
func (c CustomizationCategory) HasSelection() bool {
	for _, opt := range c.options {
		if opt.IsSelected() {
			return true
		}
	}
	return false
}

func (c CustomizationCategory) option(name string) *CustomizationOption {
	for i := range c.options {
		if c.options[i].name == name {
			return &c.options[i]
		}
	}
	return nil
}

// clone deep-copies the options, optionally clearing current quantities.
func (c CustomizationCategory) clone(reset bool) CustomizationCategory {
	options := make([]CustomizationOption, len(c.options))
	for i, opt := range c.options {
		if reset {
			opt = opt.reset()
		}
		options[i] = opt
	}
	c.options = options
	return c
}

func cloneCategories(in []CustomizationCategory, reset bool) []CustomizationCategory {
	if in == nil {
		return nil
	}
	out := make([]CustomizationCategory, len(in))
	for i, c := range in {
		out[i] = c.clone(reset)
	}
	return out
}
