package http

import (
	"errors"
	"net/http"

	"jinbbq/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorResponse(c echo.Context, code int, message string) error {
	return c.JSON(code, Error{Code: code, Message: message})
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the mapped status. Internal errors are logged and answered with
// an opaque message.
func (s *Server) fail(c echo.Context, err error, message string) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Errorw(message, "path", c.Path(), "error", err)
		return errorResponse(c, code, message)
	}
	return errorResponse(c, code, err.Error())
}

func badRequest(c echo.Context, message string) error {
	return errorResponse(c, http.StatusBadRequest, message)
}
