package http_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	httpin "jinbbq/internal/adapters/in/http"
	"jinbbq/internal/adapters/out/events"
	"jinbbq/internal/adapters/out/memory"
	"jinbbq/internal/core/application/usecases/commands"
	"jinbbq/internal/core/application/usecases/queries"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/core/ports"
	"jinbbq/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog map[kernel.UUID]*menu.MenuItem

func (c stubCatalog) Get(_ context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	item, ok := c[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menu item", id)
	}
	return item, nil
}

// orderStore keeps orders in memory and announces committed writes.
type orderStore struct {
	mu        sync.Mutex
	orders    map[kernel.UUID]*order.Order
	publisher ports.OrderEventPublisher
}

func newOrderStore(publisher ports.OrderEventPublisher) *orderStore {
	return &orderStore{orders: make(map[kernel.UUID]*order.Order), publisher: publisher}
}

func (s *orderStore) Create() commands.OrderUoW { return &orderUoW{store: s} }

func (s *orderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (s *orderStore) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*order.Order
	for _, o := range s.orders {
		if filter.Matches(o.CustomerID()) {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b *order.Order) int { return b.PlacedAt().Compare(a.PlacedAt()) })
	return out, nil
}

type orderUoW struct {
	store   *orderStore
	pending []*order.Order
	removed []*order.Order
}

func (u *orderUoW) Begin(context.Context) error    { return nil }
func (u *orderUoW) Rollback(context.Context) error { u.pending, u.removed = nil, nil; return nil }

func (u *orderUoW) Commit(ctx context.Context) error {
	u.store.mu.Lock()
	for _, o := range u.pending {
		u.store.orders[o.ID()] = o
	}
	for _, o := range u.removed {
		delete(u.store.orders, o.ID())
	}
	u.store.mu.Unlock()

	if u.store.publisher != nil {
		for _, o := range u.pending {
			_ = u.store.publisher.Publish(ctx, ports.OrderChange{OrderID: o.ID(), CustomerID: o.CustomerID(), Status: o.Status()})
		}
	}
	u.pending, u.removed = nil, nil
	return nil
}

func (u *orderUoW) OrderRepository() ports.OrderRepository { return orderRepo{uow: u} }

type orderRepo struct{ uow *orderUoW }

func (r orderRepo) Add(_ context.Context, o *order.Order) error {
	r.uow.pending = append(r.uow.pending, o)
	return nil
}

func (r orderRepo) Update(_ context.Context, o *order.Order) error {
	r.uow.pending = append(r.uow.pending, o)
	return nil
}

func (r orderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.uow.store.Get(ctx, id)
}

func (r orderRepo) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	return r.uow.store.List(ctx, filter)
}

func (r orderRepo) Delete(_ context.Context, o *order.Order) error {
	r.uow.removed = append(r.uow.removed, o)
	return nil
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	router http.Handler
	galbi  kernel.UUID
	rice   kernel.UUID
	clock  *manualClock
	hub    *events.Hub
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	galbi := mustMenuItem(t, "Galbi", "19.99")
	rice := mustMenuItem(t, "Kimchi Fried Rice", "11.99")
	catalog := stubCatalog{galbi.ID(): galbi, rice.ID(): rice}

	clock := &manualClock{now: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)}
	hub := events.NewHub()
	carts := memory.NewCartStore()
	orders := newOrderStore(hub)
	taxRate, err := pricing.ParseTaxRate("0.10")
	require.NoError(t, err)

	e := newRouter(t, httpin.Handlers{
		AddToCart:          commands.NewAddToCartCommandHandler(catalog, carts, false),
		ChangeCartQuantity: commands.NewChangeCartQuantityCommandHandler(carts),
		RemoveFromCart:     commands.NewRemoveFromCartCommandHandler(carts),
		ClearCart:          commands.NewClearCartCommandHandler(carts),
		PlaceOrder:         commands.NewPlaceOrderCommandHandler(orders, carts, taxRate, clock.Now),
		CancelOrder:        commands.NewCancelOrderCommandHandler(orders, clock.Now),
		UpdateOrderStatus:  commands.NewUpdateOrderStatusCommandHandler(orders),
		DeleteOrder:        commands.NewDeleteOrderCommandHandler(orders),
		QuoteMenuItem:      queries.NewQuoteMenuItemQueryHandler(catalog),
		GetCart:            queries.NewGetCartQueryHandler(carts, taxRate),
		GetOrders:          queries.NewGetOrdersQueryHandler(orders),
		GetOrder:           queries.NewGetOrderQueryHandler(orders),
	}, hub)

	return fixture{router: e, galbi: galbi.ID(), rice: rice.ID(), clock: clock, hub: hub}
}

func mustMenuItem(t *testing.T, title, price string) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), menu.Attributes{
		Title:     title,
		Price:     kernel.MustMoney(price),
		Category:  "BBQ",
		Available: true,
	})
	require.NoError(t, err)
	return item
}

func (f fixture) do(t *testing.T, method, target, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, f.router, method, target, bearer, body)
}

func TestCheckoutFlow(t *testing.T) {
	f := newFixture(t)
	alice := token(t, "alice", false)

	rec := f.do(t, http.MethodPost, "/api/v1/cart/items", alice, map[string]any{"menuItemId": f.galbi.String()})
	requireStatus(t, rec, http.StatusNoContent)
	for range 2 {
		rec = f.do(t, http.MethodPost, "/api/v1/cart/items", alice, map[string]any{"menuItemId": f.rice.String()})
		requireStatus(t, rec, http.StatusNoContent)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/cart", alice, nil)
	requireStatus(t, rec, http.StatusOK)
	cart := decode[httpin.Cart](t, rec)
	require.Len(t, cart.Items, 2, "repeated items merge into one line")
	assert.Equal(t, 2, cart.Items[1].Quantity)
	assert.Equal(t, "23.98", cart.Items[1].LineTotal)
	assert.Equal(t, httpin.Breakdown{
		Subtotal:     "43.97",
		TaxRate:      "0.1",
		Tax:          "4.40",
		Tip:          "0.00",
		Total:        "48.37",
		TotalDisplay: "$48.37",
	}, cart.Breakdown)

	rec = f.do(t, http.MethodGet, "/api/v1/cart?tipPreset=20", alice, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "8.79", decode[httpin.Cart](t, rec).Breakdown.Tip)

	rec = f.do(t, http.MethodPost, "/api/v1/orders?tipPreset=20", alice, nil)
	requireStatus(t, rec, http.StatusCreated)
	orderID := decode[httpin.CreatedID](t, rec).ID

	rec = f.do(t, http.MethodGet, "/api/v1/cart", alice, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Empty(t, decode[httpin.Cart](t, rec).Items, "checkout empties the cart")

	rec = f.do(t, http.MethodGet, "/api/v1/orders", alice, nil)
	requireStatus(t, rec, http.StatusOK)
	groups := decode[httpin.OrderGroups](t, rec)
	require.Len(t, groups.InProgress, 1)
	placed := groups.InProgress[0]
	assert.Equal(t, orderID, placed.ID)
	assert.Equal(t, "orderPlaced", placed.Status)
	assert.Equal(t, 1, placed.Progress)
	assert.Equal(t, "0.1", placed.Breakdown.TaxRate)
	assert.Equal(t, "8.79", placed.Breakdown.Tip, "the checkout tip is kept on the order")
	assert.Equal(t, "57.16", placed.Breakdown.Total)

	rec = f.do(t, http.MethodGet, "/api/v1/orders/"+orderID, token(t, "bob", false), nil)
	requireStatus(t, rec, http.StatusNotFound)

	rec = f.do(t, http.MethodPost, "/api/v1/orders", alice, nil)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCancellationWindow(t *testing.T) {
	testCases := []struct {
		name      string
		elapsed   time.Duration
		cancelled bool
		status    string
	}{
		{"within_window", 3 * time.Second, true, "cancelled"},
		{"at_boundary", order.CancellationWindow, true, "cancelled"},
		{"after_window", 6 * time.Second, false, "orderPlaced"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			alice := token(t, "alice", false)

			requireStatus(t, f.do(t, http.MethodPost, "/api/v1/cart/items", alice, map[string]any{"menuItemId": f.galbi.String()}), http.StatusNoContent)
			rec := f.do(t, http.MethodPost, "/api/v1/orders", alice, nil)
			requireStatus(t, rec, http.StatusCreated)
			orderID := decode[httpin.CreatedID](t, rec).ID

			f.clock.Advance(tc.elapsed)

			rec = f.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/cancel", alice, nil)
			requireStatus(t, rec, http.StatusOK)
			assert.Equal(t, tc.cancelled, decode[httpin.CancelResult](t, rec).Cancelled)

			rec = f.do(t, http.MethodGet, "/api/v1/orders/"+orderID, alice, nil)
			requireStatus(t, rec, http.StatusOK)
			assert.Equal(t, tc.status, decode[httpin.Order](t, rec).Status)
		})
	}
}

func TestWatchOrders_StreamsStaffStatusUpdates(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/orders/watch", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token(t, "alice", false))

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return f.hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	alice := token(t, "alice", false)
	requireStatus(t, f.do(t, http.MethodPost, "/api/v1/cart/items", alice, map[string]any{"menuItemId": f.galbi.String()}), http.StatusNoContent)
	rec := f.do(t, http.MethodPost, "/api/v1/orders", alice, nil)
	requireStatus(t, rec, http.StatusCreated)
	orderID := decode[httpin.CreatedID](t, rec).ID

	rec = f.do(t, http.MethodPatch, "/api/v1/orders/"+orderID+"/status", token(t, "chef", true), map[string]string{"status": "preparing"})
	requireStatus(t, rec, http.StatusNoContent)

	reader := bufio.NewReader(res.Body)
	var data []string
	for len(data) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if payload, ok := strings.CutPrefix(line, "data: "); ok {
			data = append(data, payload)
		}
	}

	assert.Contains(t, data[0], `"status":"orderPlaced"`)
	assert.Contains(t, data[1], `"status":"preparing"`)
	assert.Contains(t, data[1], orderID)
}
