package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation in api/openapi.yaml.
type ServerInterface interface {
	ListMenuItems(ctx echo.Context, params ListMenuItemsParams) error
	CreateMenuItem(ctx echo.Context) error
	UpdateMenuItem(ctx echo.Context, id string) error
	QuoteMenuItem(ctx echo.Context, id string) error

	GetCart(ctx echo.Context, params GetCartParams) error
	ClearCart(ctx echo.Context) error
	AddToCart(ctx echo.Context) error
	RemoveFromCart(ctx echo.Context, id string) error
	IncreaseCartItem(ctx echo.Context, id string) error
	DecreaseCartItem(ctx echo.Context, id string) error

	PlaceOrder(ctx echo.Context, params PlaceOrderParams) error
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	WatchOrders(ctx echo.Context) error
	GetOrder(ctx echo.Context, id string) error
	DeleteOrder(ctx echo.Context, id string) error
	UpdateOrderStatus(ctx echo.Context, id string) error
	CancelOrder(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter id: "+err.Error())
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	return nil
}

func (w *ServerInterfaceWrapper) ListMenuItems(ctx echo.Context) error {
	var params ListMenuItemsParams
	if err := bindQuery(ctx, "category", &params.Category); err != nil {
		return err
	}
	if err := bindQuery(ctx, "search", &params.Search); err != nil {
		return err
	}
	if err := bindQuery(ctx, "popular", &params.Popular); err != nil {
		return err
	}
	return w.Handler.ListMenuItems(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateMenuItem(ctx echo.Context) error {
	return w.Handler.CreateMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) UpdateMenuItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateMenuItem(ctx, id)
}

func (w *ServerInterfaceWrapper) QuoteMenuItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.QuoteMenuItem(ctx, id)
}

func bindChargeParams(ctx echo.Context) (ChargeParams, error) {
	var params ChargeParams
	if err := bindQuery(ctx, "tipPreset", &params.TipPreset); err != nil {
		return ChargeParams{}, err
	}
	if err := bindQuery(ctx, "tipAmount", &params.TipAmount); err != nil {
		return ChargeParams{}, err
	}
	if err := bindQuery(ctx, "taxRate", &params.TaxRate); err != nil {
		return ChargeParams{}, err
	}
	return params, nil
}

func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	params, err := bindChargeParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCart(ctx, GetCartParams(params))
}

func (w *ServerInterfaceWrapper) ClearCart(ctx echo.Context) error {
	return w.Handler.ClearCart(ctx)
}

func (w *ServerInterfaceWrapper) AddToCart(ctx echo.Context) error {
	return w.Handler.AddToCart(ctx)
}

func (w *ServerInterfaceWrapper) RemoveFromCart(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveFromCart(ctx, id)
}

func (w *ServerInterfaceWrapper) IncreaseCartItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.IncreaseCartItem(ctx, id)
}

func (w *ServerInterfaceWrapper) DecreaseCartItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DecreaseCartItem(ctx, id)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	params, err := bindChargeParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PlaceOrder(ctx, PlaceOrderParams(params))
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	return w.Handler.GetOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) WatchOrders(ctx echo.Context) error {
	return w.Handler.WatchOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, id)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under baseURL. Staff-only
// operations are wrapped with RequireStaff.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/menu", w.ListMenuItems)
	router.POST(baseURL+"/menu", w.CreateMenuItem, RequireStaff)
	router.PUT(baseURL+"/menu/:id", w.UpdateMenuItem, RequireStaff)
	router.POST(baseURL+"/menu/:id/quote", w.QuoteMenuItem)

	router.GET(baseURL+"/cart", w.GetCart)
	router.DELETE(baseURL+"/cart", w.ClearCart)
	router.POST(baseURL+"/cart/items", w.AddToCart)
	router.DELETE(baseURL+"/cart/items/:id", w.RemoveFromCart)
	router.POST(baseURL+"/cart/items/:id/increase", w.IncreaseCartItem)
	router.POST(baseURL+"/cart/items/:id/decrease", w.DecreaseCartItem)

	router.POST(baseURL+"/orders", w.PlaceOrder)
	router.GET(baseURL+"/orders", w.GetOrders)
	router.GET(baseURL+"/orders/watch", w.WatchOrders)
	router.GET(baseURL+"/orders/:id", w.GetOrder)
	router.DELETE(baseURL+"/orders/:id", w.DeleteOrder, RequireStaff)
	router.PATCH(baseURL+"/orders/:id/status", w.UpdateOrderStatus, RequireStaff)
	router.POST(baseURL+"/orders/:id/cancel", w.CancelOrder)
}
