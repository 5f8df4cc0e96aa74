package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusOf(err error) (int, string) {
	var bindErr *echo.BindingError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &bindErr):
		return bindErr.Code, fmt.Sprintf("%v: %s", bindErr.Message, bindErr.Field)
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// errorHandler maps domain errors onto HTTP statuses: not found 404, invalid
// input 400, conflict 409, anything else 500.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusOf(err)
		ctx := c.Request().Context()
		attrs := []any{"method", c.Request().Method, "path", c.Path(), "status", status, "error", err}
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed", attrs...)
		} else {
			logger.WarnContext(ctx, "request rejected", attrs...)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx, "write error response", "error", writeErr)
		}
	}
}
