package http

import (
	"errors"
	"net/http"

	"eats/internal/adapters/out/credentials"
	"eats/internal/adapters/out/notifier"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/generated/servers"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// statusFor classifies a use-case error into an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, credentials.ErrInvalidToken),
		errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, notifier.ErrHubClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope. Unclassified errors are logged and replaced
// by a generic message.
func fail(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).ErrorContext(c.Request().Context(),
			"Request failed", "error", err, "path", c.Path())
		message = internalErrorMessage
	}
	return c.JSON(status, servers.Error{Ok: false, Error: message})
}

// ErrorHandler renders errors that escape the handlers (routing misses, bind
// and parameter errors, panics recovered by echo) in the same envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		if he.Code >= http.StatusInternalServerError {
			message = internalErrorMessage
		}
		_ = c.JSON(he.Code, servers.Error{Ok: false, Error: message})
		return
	}

	_ = fail(c, err)
}
