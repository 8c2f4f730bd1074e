package http

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy of internal/pkg/errs onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler replaces echo's default so domain errors returned by handlers
// get their taxonomy status. Server faults are logged and hidden from the client.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := statusFor(err)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}
		message := clientMessage(logger, c, code, err)

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

// clientMessage is the message reported for a failed request. Server faults
// are logged and hidden behind a generic message.
func clientMessage(logger *slog.Logger, c echo.Context, code int, err error) string {
	if code >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return "internal server error"
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			return m
		}
		return http.StatusText(httpErr.Code)
	}
	return err.Error()
}
