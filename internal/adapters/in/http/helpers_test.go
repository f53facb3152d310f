package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jinbbq/api"
	httpin "jinbbq/internal/adapters/in/http"
	"jinbbq/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) Handle(ctx context.Context, cmd C) error { return f(ctx, cmd) }

type queryFunc[Q, R any] func(ctx context.Context, query Q) (R, error)

func (f queryFunc[Q, R]) Handle(ctx context.Context, query Q) (R, error) { return f(ctx, query) }

type noWatcher struct{}

func (noWatcher) Subscribe(ctx context.Context, _ ports.OrderFilter) <-chan ports.OrderChange {
	ch := make(chan ports.OrderChange)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

func newRouter(t *testing.T, handlers httpin.Handlers, watcher ports.OrderWatcher) *echo.Echo {
	t.Helper()

	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	if watcher == nil {
		watcher = noWatcher{}
	}
	server := httpin.NewServer(handlers, watcher, zap.NewNop().Sugar())

	e, err := httpin.NewRouter(server, httpin.NewAuthenticator(testSecret), doc, zap.NewNop().Sugar())
	require.NoError(t, err)
	return e
}

func token(t *testing.T, customerID string, staff bool) string {
	t.Helper()
	raw, err := httpin.NewAuthenticator(testSecret).IssueToken(customerID, staff, time.Hour)
	require.NoError(t, err)
	return raw
}

func do(t *testing.T, h http.Handler, method, target, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = strings.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, rec.Code, rec.Body.String())
}

