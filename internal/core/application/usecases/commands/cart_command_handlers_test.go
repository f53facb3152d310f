package commands_test

import (
	"testing"

	"jinbbq/internal/core/application/usecases/commands"
	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T, customerID string, quantity int) (*stubCartStore, kernel.UUID) {
	t.Helper()
	item := newMenuItem(t, "Galbi", "14.99", true)
	store := newStubCartStore()
	require.NoError(t, store.Update(t.Context(), customerID, func(c *cart.Cart) error {
		for range quantity {
			c.Add(item)
		}
		return nil
	}))
	return store, item.ID()
}

func TestChangeCartQuantityCommandHandler_Handle(t *testing.T) {
	t.Run("increase adds one unit", func(t *testing.T) {
		store, id := seededStore(t, "cust-1", 1)
		h := commands.NewChangeCartQuantityCommandHandler(store)
		cmd, err := commands.NewChangeCartQuantityCommand("cust-1", id, commands.Increase)
		require.NoError(t, err)

		require.NoError(t, h.Handle(t.Context(), cmd))

		c, _ := store.Get(t.Context(), "cust-1")
		assert.Equal(t, 2, c.Quantity(id))
	})

	t.Run("decrease at one removes the line", func(t *testing.T) {
		store, id := seededStore(t, "cust-1", 1)
		h := commands.NewChangeCartQuantityCommandHandler(store)
		cmd, _ := commands.NewChangeCartQuantityCommand("cust-1", id, commands.Decrease)

		require.NoError(t, h.Handle(t.Context(), cmd))

		c, _ := store.Get(t.Context(), "cust-1")
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown item is ignored", func(t *testing.T) {
		store, id := seededStore(t, "cust-1", 2)
		h := commands.NewChangeCartQuantityCommandHandler(store)
		cmd, _ := commands.NewChangeCartQuantityCommand("cust-1", kernel.NewUUID(), commands.Increase)

		require.NoError(t, h.Handle(t.Context(), cmd))

		c, _ := store.Get(t.Context(), "cust-1")
		assert.Equal(t, 2, c.Quantity(id))
		assert.Len(t, c.Items(), 1)
	})
}

func TestRemoveFromCartCommandHandler_Handle(t *testing.T) {
	store, id := seededStore(t, "cust-1", 2)
	h := commands.NewRemoveFromCartCommandHandler(store)
	cmd, err := commands.NewRemoveFromCartCommand("cust-1", id)
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))
	c, _ := store.Get(t.Context(), "cust-1")
	assert.Equal(t, 1, c.Quantity(id))

	require.NoError(t, h.Handle(t.Context(), cmd))
	c, _ = store.Get(t.Context(), "cust-1")
	assert.True(t, c.IsEmpty())

	require.NoError(t, h.Handle(t.Context(), cmd))
}

func TestClearCartCommandHandler_Handle(t *testing.T) {
	store, _ := seededStore(t, "cust-1", 3)
	other, _ := seededStore(t, "cust-2", 1)
	h := commands.NewClearCartCommandHandler(store)
	cmd, err := commands.NewClearCartCommand("cust-1")
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))

	c, _ := store.Get(t.Context(), "cust-1")
	assert.True(t, c.IsEmpty())
	o, _ := other.Get(t.Context(), "cust-2")
	assert.False(t, o.IsEmpty())
}
