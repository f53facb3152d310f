package services

import (
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
)

// Quote is the priced result of customizing a menu item.
type Quote struct {
	// UnitPrice is the base price plus every selected option's contribution.
	UnitPrice kernel.Money

	// Categories holds the options with their applied quantities.
	Categories []menu.CustomizationCategory

	// MissingRequired names required categories without a selection.
	MissingRequired []string
}

// CustomizationResolver prices menu items under customer selections.
type CustomizationResolver struct{}

func NewCustomizationResolver() CustomizationResolver {
	return CustomizationResolver{}
}

// ItemTotal is base plus the contribution of every option: the cost of a
// selected checkmark option, or cost × quantity for a quantity option.
func (CustomizationResolver) ItemTotal(base kernel.Money, categories []menu.CustomizationCategory) kernel.Money {
	total := base
	for _, cat := range categories {
		for _, opt := range cat.Options() {
			total = total.Add(opt.Contribution())
		}
	}
	return total
}

// Quote applies selections to a fresh customization of item and prices it.
// Unknown category or option names fail with errs.ErrObjectNotFound.
func (r CustomizationResolver) Quote(item *menu.MenuItem, selections []menu.Selection) (Quote, error) {
	if err := item.Validate(); err != nil {
		return Quote{}, err
	}

	c := item.NewCustomization()
	if err := c.Apply(selections); err != nil {
		return Quote{}, err
	}

	categories := c.Categories()
	return Quote{
		UnitPrice:       r.ItemTotal(item.Price(), categories),
		Categories:      categories,
		MissingRequired: c.MissingRequired(),
	}, nil
}
