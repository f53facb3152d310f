package menu

import (
	"errors"
	"fmt"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned for menu items not built by NewMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// Attributes are the staff-editable fields of a menu item.
type Attributes struct {
	Title          string
	Description    string
	Price          kernel.Money
	ImageRef       string
	Category       string
	Popular        bool
	ARModelRef     string
	Available      bool
	Customizations []CustomizationCategory
}

// MenuItem is a catalog entry. The catalog store assigns its identifier; within a
// customer session the entry is read-only, and carts copy what they need from it.
//
// Invariants:
//   - identifier is a valid UUID
//   - title is not empty
//   - price is never negative (guaranteed by kernel.Money)
//   - customization category names are unique
type MenuItem struct {
	id    kernel.UUID
	attrs Attributes

	isConstructed bool
}

// NewMenuItem validates and builds a catalog entry. It is also used to rebuild
// entries loaded from persistence.
func NewMenuItem(id kernel.UUID, attrs Attributes) (*MenuItem, error) {
	item := &MenuItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setAttributes(attrs),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was built via NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// Update replaces all editable attributes. On failure the item is unchanged.
func (m *MenuItem) Update(attrs Attributes) error {
	return m.setAttributes(attrs)
}

func (m *MenuItem) ID() kernel.UUID { return m.id }
func (m *MenuItem) Title() string { return m.attrs.Title }
func (m *MenuItem) Description() string { return m.attrs.Description }
func (m *MenuItem) Price() kernel.Money { return m.attrs.Price }
func (m *MenuItem) ImageRef() string { return m.attrs.ImageRef }
func (m *MenuItem) Category() string { return m.attrs.Category }
func (m *MenuItem) IsPopular() bool { return m.attrs.Popular }
func (m *MenuItem) IsAvailable() bool { return m.attrs.Available }
func (m *MenuItem) ARModelRef() string { return m.attrs.ARModelRef }
func (m *MenuItem) HasARModel() bool { return m.attrs.ARModelRef != "" }

// Customizations returns a copy of the option templates.
func (m *MenuItem) Customizations() []CustomizationCategory {
	return cloneCategories(m.attrs.Customizations, false)
}

// NewCustomization starts a customer selection for this item with nothing picked.
func (m *MenuItem) NewCustomization() *Customization {
	return NewCustomization(m.attrs.Customizations)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setAttributes(attrs Attributes) error {
	if attrs.Title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if err := attrs.Price.ValidateCents("price"); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(attrs.Customizations))
	for _, c := range attrs.Customizations {
		if c.name == "" {
			return errs.NewValueIsRequiredError("category name")
		}
		if _, dup := seen[c.name]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"customizations",
				fmt.Errorf("category %q appears twice", c.name),
			)
		}
		seen[c.name] = struct{}{}
	}

	attrs.Customizations = cloneCategories(attrs.Customizations, true)
	m.attrs = attrs
	return nil
}
