package commands_test

import (
	"testing"

	"jinbbq/internal/core/application/usecases/commands"
	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCartCommandHandler_Handle(t *testing.T) {
	t.Run("should merge repeated adds into one line", func(t *testing.T) {
		ctx := t.Context()
		item := newMenuItem(t, "Galbi", "14.99", true)
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, item.ID()).Return(item, nil).Twice()
		carts := newStubCartStore()
		h := commands.NewAddToCartCommandHandler(menuItems, carts, false)

		cmd, err := commands.NewAddToCartCommand("cust-1", item.ID(), nil)
		require.NoError(t, err)
		require.NoError(t, h.Handle(ctx, cmd))
		require.NoError(t, h.Handle(ctx, cmd))

		c, err := carts.Get(ctx, "cust-1")
		require.NoError(t, err)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 2, c.Quantity(item.ID()))
		menuItems.AssertExpectations(t)
	})

	t.Run("should price customized item", func(t *testing.T) {
		ctx := t.Context()
		item := newMenuItem(t, "Bibimbap", "12.99", true, riceCategory(t))
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
		carts := newStubCartStore()
		h := commands.NewAddToCartCommandHandler(menuItems, carts, false)

		cmd, err := commands.NewAddToCartCommand("cust-1", item.ID(), []menu.Selection{
			{Category: "Replace Rice With", Option: "Fried Rice", Quantity: 1},
		})
		require.NoError(t, err)
		require.NoError(t, h.Handle(ctx, cmd))

		c, _ := carts.Get(ctx, "cust-1")
		require.Len(t, c.Items(), 1)
		assert.Equal(t, "14.99", c.Items()[0].UnitPrice().String())
	})

	t.Run("should reject a second add with a different customization price", func(t *testing.T) {
		ctx := t.Context()
		item := newMenuItem(t, "Bibimbap", "12.99", true, riceCategory(t))
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, item.ID()).Return(item, nil).Twice()
		carts := newStubCartStore()
		h := commands.NewAddToCartCommandHandler(menuItems, carts, false)

		friedRice, err := commands.NewAddToCartCommand("cust-1", item.ID(), []menu.Selection{
			{Category: "Replace Rice With", Option: "Fried Rice", Quantity: 1},
		})
		require.NoError(t, err)
		plain, err := commands.NewAddToCartCommand("cust-1", item.ID(), nil)
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, friedRice))
		err = h.Handle(ctx, plain)

		require.ErrorIs(t, err, cart.ErrUnitPriceMismatch)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		c, _ := carts.Get(ctx, "cust-1")
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 1, c.Quantity(item.ID()))
		assert.Equal(t, "14.99", c.Items()[0].UnitPrice().String())
		menuItems.AssertExpectations(t)
	})

	t.Run("should reject unavailable item", func(t *testing.T) {
		ctx := t.Context()
		item := newMenuItem(t, "Naengmyeon", "11.99", false)
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
		carts := newStubCartStore()
		h := commands.NewAddToCartCommandHandler(menuItems, carts, false)

		cmd, _ := commands.NewAddToCartCommand("cust-1", item.ID(), nil)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrMenuItemIsUnavailable)
		c, _ := carts.Get(ctx, "cust-1")
		assert.True(t, c.IsEmpty())
	})

	t.Run("missing required category is allowed by default", func(t *testing.T) {
		ctx := t.Context()
		item := newMenuItem(t, "Bibimbap", "12.99", true, riceCategory(t))
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
		carts := newStubCartStore()
		h := commands.NewAddToCartCommandHandler(menuItems, carts, false)

		cmd, _ := commands.NewAddToCartCommand("cust-1", item.ID(), nil)

		require.NoError(t, h.Handle(ctx, cmd))
	})

	t.Run("missing required category is rejected when enforced", func(t *testing.T) {
		ctx := t.Context()
		item := newMenuItem(t, "Bibimbap", "12.99", true, riceCategory(t))
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
		carts := newStubCartStore()
		h := commands.NewAddToCartCommandHandler(menuItems, carts, true)

		cmd, _ := commands.NewAddToCartCommand("cust-1", item.ID(), nil)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "Replace Rice With")
		c, _ := carts.Get(ctx, "cust-1")
		assert.True(t, c.IsEmpty())
	})

	t.Run("should reject unknown option", func(t *testing.T) {
		ctx := t.Context()
		item := newMenuItem(t, "Bibimbap", "12.99", true, riceCategory(t))
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
		h := commands.NewAddToCartCommandHandler(menuItems, newStubCartStore(), false)

		cmd, _ := commands.NewAddToCartCommand("cust-1", item.ID(), []menu.Selection{
			{Category: "Replace Rice With", Option: "Udon", Quantity: 1},
		})

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("should propagate missing menu item", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		menuItems := new(MockMenuItemRepository)
		menuItems.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("menu item", id.String())).Once()
		h := commands.NewAddToCartCommandHandler(menuItems, newStubCartStore(), false)

		cmd, _ := commands.NewAddToCartCommand("cust-1", id, nil)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		h := commands.NewAddToCartCommandHandler(new(MockMenuItemRepository), newStubCartStore(), false)

		err := h.Handle(t.Context(), commands.AddToCartCommand{})

		require.ErrorIs(t, err, commands.ErrAddToCartCommandIsNotConstructed)
	})
}
