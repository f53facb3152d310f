package menu

import (
	"fmt"

	"jinbbq/internal/pkg/errs"
)

// Selection asks for an option to be set to a quantity. For checkmark options
// any positive quantity selects the option.
type Selection struct {
	Category string
	Option   string
	Quantity int
}

// Customization is a customer's working copy of a menu item's options. It is
// independent from the catalog entry it was started from.
type Customization struct {
	categories []CustomizationCategory
}

// NewCustomization starts an empty selection over the given category templates.
func NewCustomization(categories []CustomizationCategory) *Customization {
	return &Customization{categories: cloneCategories(categories, true)}
}

// Categories returns a copy of the categories with their current quantities.
func (c *Customization) Categories() []CustomizationCategory {
	return cloneCategories(c.categories, false)
}

// Increase adds one unit to an option, clamped at its limit.
func (c *Customization) Increase(category, option string) error {
	opt, err := c.find(category, option)
	if err != nil {
		return err
	}
	opt.Increase()
	return nil
}

// Decrease removes one unit from an option, clamped at zero.
func (c *Customization) Decrease(category, option string) error {
	opt, err := c.find(category, option)
	if err != nil {
		return err
	}
	opt.Decrease()
	return nil
}

// Toggle flips a checkmark option.
func (c *Customization) Toggle(category, option string) error {
	opt, err := c.find(category, option)
	if err != nil {
		return err
	}
	opt.Toggle()
	return nil
}

// Apply sets every selection in order. Quantities are clamped per option, and
// the first unknown category or option aborts with ErrObjectNotFound while
// leaving earlier selections applied.
func (c *Customization) Apply(selections []Selection) error {
	for _, s := range selections {
		opt, err := c.find(s.Category, s.Option)
		if err != nil {
			return err
		}
		if opt.selectionType == Checkmark && s.Quantity > 0 {
			opt.Set(1)
			continue
		}
		opt.Set(s.Quantity)
	}
	return nil
}

// MissingRequired lists required categories that have no selected option.
func (c *Customization) MissingRequired() []string {
	var missing []string
	for _, cat := range c.categories {
		if cat.required && !cat.HasSelection() {
			missing = append(missing, cat.name)
		}
	}
	return missing
}

func (c *Customization) find(category, option string) (*CustomizationOption, error) {
	for i := range c.categories {
		if c.categories[i].name != category {
			continue
		}
		if opt := c.categories[i].option(option); opt != nil {
			return opt, nil
		}
		return nil, errs.NewObjectNotFoundError("customization option", fmt.Sprintf("%s/%s", category, option))
	}
	return nil, errs.NewObjectNotFoundError("customization category", category)
}
