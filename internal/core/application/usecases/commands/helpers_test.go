package commands_test

import (
	"testing"
	"time"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func defaultRate(t *testing.T) pricing.TaxRate {
	t.Helper()
	rate, err := pricing.ParseTaxRate("0.10")
	require.NoError(t, err)
	return rate
}

func newMenuItem(t *testing.T, title, price string, available bool, categories ...menu.CustomizationCategory) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), menu.Attributes{
		Title:          title,
		Price:          kernel.MustMoney(price),
		Category:       "BBQ",
		Available:      available,
		Customizations: categories,
	})
	require.NoError(t, err)
	return item
}

func riceCategory(t *testing.T) menu.CustomizationCategory {
	t.Helper()
	opt, err := menu.NewCustomizationOption("Fried Rice", kernel.MustMoney("2.00"), menu.Checkmark, 0)
	require.NoError(t, err)
	cat, err := menu.NewCustomizationCategory("Replace Rice With", true, []menu.CustomizationOption{opt})
	require.NoError(t, err)
	return cat
}

func placedOrder(t *testing.T, customerID string) *order.Order {
	t.Helper()
	c := cart.New(customerID)
	c.Add(newMenuItem(t, "Galbi", "14.99", true))
	o, err := order.NewOrder(kernel.NewUUID(), customerID, c.Snapshot(), order.Charges{TaxRate: defaultRate(t)}, placedAt)
	require.NoError(t, err)
	return o
}
