package kernel_test

import (
	"testing"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	t.Run("should parse plain and dollar-prefixed amounts", func(t *testing.T) {
		for input, expected := range map[string]string{
			"14.99":  "14.99",
			"$13.99": "13.99",
			" 0 ":    "0.00",
			"2.5":    "2.50",
			"4.9900": "4.99",
		} {
			m, err := kernel.ParseMoney(input)

			require.NoError(t, err, input)
			assert.Equal(t, expected, m.String(), input)
		}
	})

	t.Run("should reject non-numeric input", func(t *testing.T) {
		_, err := kernel.ParseMoney("twelve")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := kernel.ParseMoney("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative input", func(t *testing.T) {
		_, err := kernel.ParseMoney("-1.00")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject amounts below one cent", func(t *testing.T) {
		for _, input := range []string{"0.33333", "48.367", "0.005", "$1.001"} {
			_, err := kernel.ParseMoney(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}

func TestMoney_ValidateCents(t *testing.T) {
	require.NoError(t, kernel.MustMoney("19.99").ValidateCents("price"))
	require.NoError(t, kernel.Zero().ValidateCents("price"))
	require.ErrorIs(t, kernel.MustMoney("4.397").ValidateCents("price"), errs.ErrValueIsInvalid)
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should keep full precision until display", func(t *testing.T) {
		subtotal := kernel.MustMoney("14.99").Times(2).Add(kernel.MustMoney("13.99"))
		tax := subtotal.MulRate(decimal.RequireFromString("0.10"))
		total := subtotal.Add(tax)

		assert.True(t, subtotal.Amount().Equal(decimal.RequireFromString("43.97")))
		assert.True(t, tax.Amount().Equal(decimal.RequireFromString("4.397")))
		assert.True(t, total.Amount().Equal(decimal.RequireFromString("48.367")))
		assert.Equal(t, "$48.37", total.Display())
	})

	t.Run("should treat non-positive counts and negative rates as zero", func(t *testing.T) {
		price := kernel.MustMoney("9.50")

		assert.True(t, price.Times(0).IsZero())
		assert.True(t, price.Times(-3).IsZero())
		assert.True(t, price.MulRate(decimal.NewFromInt(-1)).IsZero())
	})

	t.Run("zero value is zero dollars", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.True(t, m.Equal(kernel.Zero()))
		assert.Equal(t, "$0.00", m.Display())
	})

	t.Run("equality ignores trailing zeros", func(t *testing.T) {
		assert.True(t, kernel.MustMoney("4.397").Equal(kernel.MustMoney("4.3970")))
		assert.Equal(t, "4.40", kernel.MustMoney("4.397").Rounded().StringFixed(2))
	})
}

func TestNewMoney(t *testing.T) {
	_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	m, err := kernel.NewMoney(decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "3.00", m.String())
}
