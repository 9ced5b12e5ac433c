package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tailorshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	messageInternal    = "Internal server error"
	messageUnavailable = "A required service is temporarily unavailable"
)

// StatusOf maps an error class to an HTTP status. Unknown errors are 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionIsNotAllowed),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamIsUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders handler errors as Error bodies. Upstream and unknown
// failures are logged and replaced with a generic message.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var body Error
		var he *echo.HTTPError
		if errors.As(err, &he) {
			body = Error{Code: he.Code, Message: http.StatusText(he.Code)}
			if msg, ok := he.Message.(string); ok {
				body.Message = msg
			}
		} else {
			body = Error{Code: StatusOf(err), Message: err.Error()}
		}

		ctx := c.Request().Context()
		switch {
		case body.Code == http.StatusBadGateway:
			logger.WarnContext(ctx, "upstream failure", "path", c.Path(), "error", err)
			body.Message = messageUnavailable
		case body.Code >= http.StatusInternalServerError:
			logger.ErrorContext(ctx, "request failed", "path", c.Path(), "error", err)
			body.Message = messageInternal
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(body.Code)
		} else {
			err = c.JSON(body.Code, body)
		}
		if err != nil {
			logger.ErrorContext(ctx, "writing error response failed", "error", err)
		}
	}
}
