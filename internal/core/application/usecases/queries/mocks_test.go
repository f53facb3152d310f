package queries_test

import (
	"context"
	"testing"
	"time"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReader) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuItemReader struct{ mock.Mock }

func (m *MockMenuItemReader) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*menu.MenuItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartReader struct{ mock.Mock }

func (m *MockCartReader) Get(ctx context.Context, customerID string) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if c, ok := args.Get(0).(*cart.Cart); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

var placedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newMenuItem(t *testing.T, title, price string, categories ...menu.CustomizationCategory) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), menu.Attributes{
		Title:          title,
		Price:          kernel.MustMoney(price),
		Category:       "BBQ",
		Available:      true,
		Customizations: categories,
	})
	require.NoError(t, err)
	return item
}

func tenPercent(t *testing.T) pricing.TaxRate {
	t.Helper()
	rate, err := pricing.ParseTaxRate("0.10")
	require.NoError(t, err)
	return rate
}

func orderWithStatus(t *testing.T, customerID string, status order.Status) *order.Order {
	t.Helper()
	return orderWithCharges(t, customerID, status, order.Charges{TaxRate: tenPercent(t)})
}

func orderWithCharges(t *testing.T, customerID string, status order.Status, charges order.Charges) *order.Order {
	t.Helper()
	c := cart.New(customerID)
	c.Add(newMenuItem(t, "Galbi", "14.99"))
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, c.Snapshot(), charges, status, placedAt)
	require.NoError(t, err)
	return o
}
