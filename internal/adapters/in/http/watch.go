package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jinbbq/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// WatchOrders handles GET /api/v1/orders/watch as a server-sent event stream.
// Customers receive changes to their own orders; staff receive every change.
func (s *Server) WatchOrders(ctx echo.Context) error {
	identity := identityFrom(ctx)
	filter := ports.OrderFilter{CustomerID: identity.CustomerID}
	if identity.Staff {
		filter = ports.OrderFilter{}
	}

	reqCtx := ctx.Request().Context()
	changes := s.watcher.Subscribe(reqCtx, filter)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			data, err := json.Marshal(fromOrderChange(change))
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(res, "event: order\ndata: %s\n\n", data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
