package menu_test

import (
	"testing"

	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomizationCategory(t *testing.T) {
	t.Run("should reject duplicate option names", func(t *testing.T) {
		_, err := menu.NewCustomizationCategory("Extras", false, []menu.CustomizationOption{
			mustOption(t, "Egg", "1.00", menu.Quantity, 2),
			mustOption(t, "Egg", "1.00", menu.Quantity, 2),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := menu.NewCustomizationCategory("", false, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomization_Apply(t *testing.T) {
	t.Run("should set and clamp quantities", func(t *testing.T) {
		c := menu.NewCustomization([]menu.CustomizationCategory{riceCategory(t, false), extrasCategory(t)})

		err := c.Apply([]menu.Selection{
			{Category: "Replace Rice With", Option: "Noodles", Quantity: 4},
			{Category: "Extras", Option: "Extra Egg", Quantity: 9},
		})

		require.NoError(t, err)
		cats := c.Categories()
		assert.Equal(t, 1, cats[0].Options()[1].CurrentQuantity())
		assert.Equal(t, 3, cats[1].Options()[0].CurrentQuantity())
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		c := menu.NewCustomization([]menu.CustomizationCategory{extrasCategory(t)})

		err := c.Apply([]menu.Selection{{Category: "Drinks", Option: "Soju", Quantity: 1}})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "Drinks")
	})

	t.Run("should reject unknown option", func(t *testing.T) {
		c := menu.NewCustomization([]menu.CustomizationCategory{extrasCategory(t)})

		err := c.Increase("Extras", "Kimchi")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "Extras/Kimchi")
	})
}

func TestCustomization_IsIndependentCopy(t *testing.T) {
	templates := []menu.CustomizationCategory{extrasCategory(t)}
	c := menu.NewCustomization(templates)

	require.NoError(t, c.Increase("Extras", "Extra Egg"))

	assert.Equal(t, 0, templates[0].Options()[0].CurrentQuantity())
	assert.Equal(t, 1, c.Categories()[0].Options()[0].CurrentQuantity())
}

func TestCustomization_MissingRequired(t *testing.T) {
	c := menu.NewCustomization([]menu.CustomizationCategory{riceCategory(t, true), extrasCategory(t)})

	assert.Equal(t, []string{"Replace Rice With"}, c.MissingRequired())

	require.NoError(t, c.Toggle("Replace Rice With", "Fried Rice"))
	assert.Empty(t, c.MissingRequired())

	require.NoError(t, c.Toggle("Replace Rice With", "Fried Rice"))
	assert.Equal(t, []string{"Replace Rice With"}, c.MissingRequired())
}

func TestCustomization_DecreaseAtZeroIsNoop(t *testing.T) {
	c := menu.NewCustomization([]menu.CustomizationCategory{extrasCategory(t)})

	require.NoError(t, c.Decrease("Extras", "Extra Sauce"))

	assert.Equal(t, 0, c.Categories()[0].Options()[1].CurrentQuantity())
}
