package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tailorshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stage string

func (s stage) String() string { return string(s) }

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("unit"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("latitude", 91, -90, 90), http.StatusBadRequest},
		{"access denied", errs.NewAccessDeniedError("refund", "not the tailor"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("trackingCode", "delivery"), http.StatusNotFound},
		{"transition", errs.NewTransitionIsNotAllowedError("delivery", stage("pending"), stage("delivered")), http.StatusConflict},
		{"version", errs.NewVersionIsInvalidError("delivery"), http.StatusConflict},
		{"upstream", errs.NewUpstreamIsUnavailableError("stripe", errors.New("timeout")), http.StatusBadGateway},
		{"wrapped", fmt.Errorf("load order: %w", errs.NewObjectNotFoundError("orderId", "x")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func render(t *testing.T, err error) (int, Error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/orders", nil), rec)

	ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))(err, c)

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandler_DomainError(t *testing.T) {
	code, body := render(t, errs.NewAccessDeniedError("get order", "not a party"))

	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, http.StatusForbidden, body.Code)
	assert.Contains(t, body.Message, "get order")
}

func TestErrorHandler_HidesInternalDetails(t *testing.T) {
	code, body := render(t, errors.New("pq: connection refused to 10.0.0.3"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, messageInternal, body.Message)

	code, body = render(t, errs.NewUpstreamIsUnavailableError("stripe", errors.New("sk_live_secret leaked")))
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, messageUnavailable, body.Message)
}

func TestErrorHandler_HTTPError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid"))

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, Error{Code: http.StatusUnauthorized, Message: "Token is not valid"}, body)
}
