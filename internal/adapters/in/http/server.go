package http

import (
	"context"
	"net/http"
	"time"

	"jinbbq/internal/core/application/usecases/commands"
	"jinbbq/internal/core/application/usecases/queries"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/ports"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const defaultHeartbeat = 15 * time.Second

// CommandHandler is satisfied by every command handler without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by query handlers and by commands with a result.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	// Commands
	CreateMenuItem     CommandHandler[commands.CreateMenuItemCommand]
	UpdateMenuItem     CommandHandler[commands.UpdateMenuItemCommand]
	AddToCart          CommandHandler[commands.AddToCartCommand]
	ChangeCartQuantity CommandHandler[commands.ChangeCartQuantityCommand]
	RemoveFromCart     CommandHandler[commands.RemoveFromCartCommand]
	ClearCart          CommandHandler[commands.ClearCartCommand]
	PlaceOrder         CommandHandler[commands.PlaceOrderCommand]
	UpdateOrderStatus  CommandHandler[commands.UpdateOrderStatusCommand]
	CancelOrder        QueryHandler[commands.CancelOrderCommand, bool]
	DeleteOrder        CommandHandler[commands.DeleteOrderCommand]

	// Queries
	ListMenuItems QueryHandler[queries.ListMenuItemsQuery, []queries.ListMenuItemsQueryResponse]
	QuoteMenuItem QueryHandler[queries.QuoteMenuItemQuery, queries.QuoteMenuItemQueryResponse]
	GetCart       QueryHandler[queries.GetCartQuery, queries.GetCartQueryResponse]
	GetOrders     QueryHandler[queries.GetOrdersQuery, queries.GetOrdersQueryResponse]
	GetOrder      QueryHandler[queries.GetOrderQuery, queries.OrderResponse]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	watcher   ports.OrderWatcher
	logger    *zap.SugaredLogger
	newID     func() kernel.UUID
	heartbeat time.Duration
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, watcher ports.OrderWatcher, logger *zap.SugaredLogger) *Server {
	return &Server{
		handlers:  handlers,
		watcher:   watcher,
		logger:    logger,
		newID:     kernel.NewUUID,
		heartbeat: defaultHeartbeat,
	}
}

// ListMenuItems handles GET /api/v1/menu.
func (s *Server) ListMenuItems(ctx echo.Context, params ListMenuItemsParams) error {
	query := queries.NewListMenuItemsQuery(
		deref(params.Category),
		deref(params.Search),
		params.Popular != nil && *params.Popular,
	)

	items, err := s.handlers.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve menu")
	}

	response := make([]MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, fromMenuItem(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body MenuItemInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	attrs, err := body.toAttributes()
	if err != nil {
		return s.fail(ctx, err, "Invalid menu item")
	}

	id := s.newID()
	cmd, err := commands.NewCreateMenuItemCommand(id, attrs)
	if err != nil {
		return s.fail(ctx, err, "Invalid menu item")
	}

	if err = s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create menu item")
	}

	return ctx.JSON(http.StatusCreated, CreatedID{ID: id.String()})
}

// UpdateMenuItem handles PUT /api/v1/menu/{id}.
func (s *Server) UpdateMenuItem(ctx echo.Context, id string) error {
	menuItemID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body MenuItemInput
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	attrs, err := body.toAttributes()
	if err != nil {
		return s.fail(ctx, err, "Invalid menu item")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(menuItemID, attrs)
	if err != nil {
		return s.fail(ctx, err, "Invalid menu item")
	}

	if err = s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update menu item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuoteMenuItem handles POST /api/v1/menu/{id}/quote.
func (s *Server) QuoteMenuItem(ctx echo.Context, id string) error {
	menuItemID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body QuoteRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewQuoteMenuItemQuery(menuItemID, toSelections(body.Selections))
	if err != nil {
		return s.fail(ctx, err, "Invalid quote request")
	}

	quote, err := s.handlers.QuoteMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to quote menu item")
	}

	return ctx.JSON(http.StatusOK, Quote{
		MenuItemID:      quote.MenuItemID.String(),
		BasePrice:       quote.BasePrice.String(),
		UnitPrice:       quote.UnitPrice.String(),
		Customizations:  fromCategories(quote.Customizations),
		MissingRequired: quote.MissingRequired,
	})
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context, params GetCartParams) error {
	tip, taxRate, err := ChargeParams(params).parse()
	if err != nil {
		return s.fail(ctx, err, "Invalid charges")
	}

	query, err := queries.NewGetCartQuery(identityFrom(ctx).CustomerID, tip, taxRate)
	if err != nil {
		return s.fail(ctx, err, "Invalid cart request")
	}

	cart, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve cart")
	}

	return ctx.JSON(http.StatusOK, Cart{
		CustomerID: cart.CustomerID,
		Items:      fromLineItems(cart.Items),
		Breakdown:  fromBreakdown(cart.Breakdown),
	})
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(identityFrom(ctx).CustomerID)
	if err != nil {
		return s.fail(ctx, err, "Invalid cart request")
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to clear cart")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(ctx echo.Context) error {
	var body AddToCartRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(body.MenuItemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddToCartCommand(identityFrom(ctx).CustomerID, menuItemID, toSelections(body.Selections))
	if err != nil {
		return s.fail(ctx, err, "Invalid cart request")
	}

	if err = s.handlers.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to add to cart")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromCart handles DELETE /api/v1/cart/items/{id}.
func (s *Server) RemoveFromCart(ctx echo.Context, id string) error {
	menuItemID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveFromCartCommand(identityFrom(ctx).CustomerID, menuItemID)
	if err != nil {
		return s.fail(ctx, err, "Invalid cart request")
	}

	if err = s.handlers.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to remove from cart")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IncreaseCartItem handles POST /api/v1/cart/items/{id}/increase.
func (s *Server) IncreaseCartItem(ctx echo.Context, id string) error {
	return s.changeQuantity(ctx, id, commands.Increase)
}

// DecreaseCartItem handles POST /api/v1/cart/items/{id}/decrease.
func (s *Server) DecreaseCartItem(ctx echo.Context, id string) error {
	return s.changeQuantity(ctx, id, commands.Decrease)
}

func (s *Server) changeQuantity(ctx echo.Context, id string, change commands.QuantityChange) error {
	menuItemID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeCartQuantityCommand(identityFrom(ctx).CustomerID, menuItemID, change)
	if err != nil {
		return s.fail(ctx, err, "Invalid cart request")
	}

	if err = s.handlers.ChangeCartQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to change quantity")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context, params PlaceOrderParams) error {
	tip, taxRate, err := ChargeParams(params).parse()
	if err != nil {
		return s.fail(ctx, err, "Invalid charges")
	}

	orderID := s.newID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, identityFrom(ctx).CustomerID, tip, taxRate)
	if err != nil {
		return s.fail(ctx, err, "Invalid order request")
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, CreatedID{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params GetOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err, "Invalid status")
		}
		status = &parsed
	}

	identity := identityFrom(ctx)
	query, err := queries.NewGetOrdersQuery(identity.CustomerID, identity.Staff, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid orders request")
	}

	groups, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, OrderGroups{
		InProgress: fromOrders(groups.InProgress),
		Completed:  fromOrders(groups.Completed),
		Cancelled:  fromOrders(groups.Cancelled),
	})
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	identity := identityFrom(ctx)
	query, err := queries.NewGetOrderQuery(orderID, identity.CustomerID, identity.Staff)
	if err != nil {
		return s.fail(ctx, err, "Invalid order request")
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id string) error {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order request")
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id string) error {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status update")
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel. A request outside the
// cancellation window is not an error; it answers {"cancelled": false}.
func (s *Server) CancelOrder(ctx echo.Context, id string) error {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, identityFrom(ctx).CustomerID)
	if err != nil {
		return s.fail(ctx, err, "Invalid cancel request")
	}

	cancelled, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to cancel order")
	}

	return ctx.JSON(http.StatusOK, CancelResult{Cancelled: cancelled})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
