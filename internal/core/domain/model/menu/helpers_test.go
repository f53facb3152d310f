package menu_test

import (
	"testing"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"

	"github.com/stretchr/testify/require"
)

func mustOption(t *testing.T, name, cost string, st menu.SelectionType, maxQ int) menu.CustomizationOption {
	t.Helper()
	opt, err := menu.NewCustomizationOption(name, kernel.MustMoney(cost), st, maxQ)
	require.NoError(t, err)
	return opt
}

func riceCategory(t *testing.T, required bool) menu.CustomizationCategory {
	t.Helper()
	cat, err := menu.NewCustomizationCategory("Replace Rice With", required, []menu.CustomizationOption{
		mustOption(t, "Fried Rice", "2.00", menu.Checkmark, 0),
		mustOption(t, "Noodles", "3.00", menu.Checkmark, 0),
	})
	require.NoError(t, err)
	return cat
}

func extrasCategory(t *testing.T) menu.CustomizationCategory {
	t.Helper()
	cat, err := menu.NewCustomizationCategory("Extras", false, []menu.CustomizationOption{
		mustOption(t, "Extra Egg", "1.50", menu.Quantity, 3),
		mustOption(t, "Extra Sauce", "0.50", menu.Quantity, 0),
	})
	require.NoError(t, err)
	return cat
}
