package menu_test

import (
	"testing"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomizationOption(t *testing.T) {
	t.Run("should default quantity limit to 1", func(t *testing.T) {
		opt := mustOption(t, "Extra Sauce", "0.50", menu.Quantity, 0)

		assert.Equal(t, 1, opt.MaxQuantity())
		assert.Equal(t, 0, opt.CurrentQuantity())
	})

	t.Run("should force checkmark limit to 1", func(t *testing.T) {
		opt := mustOption(t, "Fried Rice", "2.00", menu.Checkmark, 5)

		assert.Equal(t, 1, opt.MaxQuantity())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := menu.NewCustomizationOption("", kernel.Zero(), menu.Checkmark, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown selection type", func(t *testing.T) {
		_, err := menu.NewCustomizationOption("Egg", kernel.Zero(), menu.UnknownSelection, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a cost below one cent", func(t *testing.T) {
		_, err := menu.NewCustomizationOption("Egg", kernel.MustMoney("0.33333"), menu.Quantity, 3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCustomizationOption_QuantityClamps(t *testing.T) {
	t.Run("increase stops at max", func(t *testing.T) {
		opt := mustOption(t, "Extra Egg", "1.50", menu.Quantity, 3)

		for range 10 {
			opt.Increase()
		}

		assert.Equal(t, 3, opt.CurrentQuantity())
	})

	t.Run("decrease stops at zero", func(t *testing.T) {
		opt := mustOption(t, "Extra Egg", "1.50", menu.Quantity, 3)
		opt.Increase()

		for range 5 {
			opt.Decrease()
		}

		assert.Equal(t, 0, opt.CurrentQuantity())
	})

	t.Run("any call order stays within bounds", func(t *testing.T) {
		opt := mustOption(t, "Extra Egg", "1.50", menu.Quantity, 2)
		ops := []func(){opt.Increase, opt.Decrease, opt.Increase, opt.Increase, opt.Increase, opt.Decrease, opt.Decrease, opt.Decrease}

		for _, op := range ops {
			op()
			assert.GreaterOrEqual(t, opt.CurrentQuantity(), 0)
			assert.LessOrEqual(t, opt.CurrentQuantity(), 2)
		}
	})

	t.Run("set clamps into range", func(t *testing.T) {
		opt := mustOption(t, "Extra Egg", "1.50", menu.Quantity, 3)

		opt.Set(7)
		assert.Equal(t, 3, opt.CurrentQuantity())

		opt.Set(-2)
		assert.Equal(t, 0, opt.CurrentQuantity())
	})
}

func TestCustomizationOption_Toggle(t *testing.T) {
	t.Run("checkmark flips between 0 and 1", func(t *testing.T) {
		opt := mustOption(t, "Fried Rice", "2.00", menu.Checkmark, 0)

		opt.Toggle()
		assert.Equal(t, 1, opt.CurrentQuantity())
		opt.Toggle()
		assert.Equal(t, 0, opt.CurrentQuantity())
	})

	t.Run("quantity option ignores toggle", func(t *testing.T) {
		opt := mustOption(t, "Extra Egg", "1.50", menu.Quantity, 3)

		opt.Toggle()

		assert.Equal(t, 0, opt.CurrentQuantity())
	})
}

func TestCustomizationOption_Contribution(t *testing.T) {
	t.Run("checkmark contributes cost once when selected", func(t *testing.T) {
		opt := mustOption(t, "Fried Rice", "2.00", menu.Checkmark, 0)
		assert.True(t, opt.Contribution().IsZero())

		opt.Toggle()

		assert.Equal(t, "2.00", opt.Contribution().String())
	})

	t.Run("quantity contributes cost times quantity", func(t *testing.T) {
		opt := mustOption(t, "Extra Egg", "1.50", menu.Quantity, 3)
		opt.Increase()
		opt.Increase()

		assert.Equal(t, "3.00", opt.Contribution().String())
	})
}

func TestParseSelectionType(t *testing.T) {
	st, err := menu.ParseSelectionType("quantity")
	require.NoError(t, err)
	assert.Equal(t, menu.Quantity, st)
	assert.Equal(t, "quantity", st.String())

	_, err = menu.ParseSelectionType("radio")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
