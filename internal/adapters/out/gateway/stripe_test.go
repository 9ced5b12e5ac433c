package gateway

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80/webhook"

	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

const webhookSecret = "whsec_test"

func stripeAt(t *testing.T, apiURL string) *StripeGateway {
	t.Helper()
	g, err := NewStripeGateway(StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: webhookSecret,
		APIURL:        apiURL,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return g
}

func newStripe(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return stripeAt(t, server.URL+"/")
}

func signedHeader(payload []byte, at time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    webhookSecret,
		Timestamp: at,
	}).Header
}

func TestNewStripeGateway_RequiresSecrets(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewStripeGateway(StripeConfig{WebhookSecret: "whsec"}, logger)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewStripeGateway(StripeConfig{SecretKey: "sk_test"}, logger)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStripeGateway_CreateIntent(t *testing.T) {
	var form url.Values
	g := newStripe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "pay-1", r.Header.Get("Idempotency-Key"))

		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		_, _ = io.WriteString(w, `{"id":"pi_123","client_secret":"pi_123_secret_abc"}`)
	})

	intent, err := g.CreateIntent(t.Context(), ports.IntentRequest{
		AmountMinor: 21500,
		Currency:    "usd",
		Metadata:    map[string]string{"paymentId": "pay-1", "orderId": "no-order"},
	})
	require.NoError(t, err)

	assert.Equal(t, ports.Intent{Reference: "pi_123", ClientSecret: "pi_123_secret_abc"}, intent)
	assert.Equal(t, "21500", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "no-order", form.Get("metadata[orderId]"))
}

func TestStripeGateway_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{
			name:   "card declined is a validation failure",
			status: http.StatusPaymentRequired,
			body:   `{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`,
			want:   errs.ErrValueIsInvalid,
		},
		{
			name:   "bad key means the gateway is unusable",
			status: http.StatusUnauthorized,
			body:   `{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`,
			want:   errs.ErrUpstreamIsUnavailable,
		},
		{
			name:   "outage",
			status: http.StatusServiceUnavailable,
			body:   `oops`,
			want:   errs.ErrUpstreamIsUnavailable,
		},
		{
			name:   "success without secret",
			status: http.StatusOK,
			body:   `{"id":"pi_1"}`,
			want:   errs.ErrUpstreamIsUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newStripe(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			_, err := g.CreateIntent(t.Context(), ports.IntentRequest{AmountMinor: 100, Currency: "usd"})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestStripeGateway_Unreachable(t *testing.T) {
	g := stripeAt(t, "http://127.0.0.1:1")

	_, err := g.Refund(t.Context(), "pi_1")
	require.ErrorIs(t, err, errs.ErrUpstreamIsUnavailable)
}

func TestStripeGateway_Refund(t *testing.T) {
	g := newStripe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/refunds", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "pi_9", r.PostForm.Get("payment_intent"))
		_, _ = io.WriteString(w, `{"id":"re_1","status":"succeeded"}`)
	})

	receipt, err := g.Refund(t.Context(), "pi_9")
	require.NoError(t, err)
	assert.Equal(t, ports.RefundReceipt{Reference: "re_1", Status: "succeeded"}, receipt)
}

func TestStripeGateway_ParseEvent(t *testing.T) {
	g := newStripe(t, func(http.ResponseWriter, *http.Request) {})
	succeeded := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1",` +
		`"charges":{"data":[{"receipt_url":"https://pay.example/r/1"}]}}}}`)
	failed := []byte(`{"id":"evt_2","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_2",` +
		`"last_payment_error":{"message":"insufficient funds"}}}}`)

	now := time.Now()

	t.Run("succeeded", func(t *testing.T) {
		event, err := g.ParseEvent(succeeded, signedHeader(succeeded, now))
		require.NoError(t, err)
		assert.Equal(t, ports.GatewayEvent{
			ID:         "evt_1",
			Type:       ports.EventPaymentSucceeded,
			Reference:  "pi_1",
			ReceiptURL: "https://pay.example/r/1",
		}, event)
	})

	t.Run("failed", func(t *testing.T) {
		event, err := g.ParseEvent(failed, signedHeader(failed, now.Add(-time.Minute)))
		require.NoError(t, err)
		assert.Equal(t, ports.EventPaymentFailed, event.Type)
		assert.Equal(t, "insufficient funds", event.FailureReason)
	})

	rejected := map[string]string{
		"missing header":   "",
		"tampered payload": signedHeader([]byte(`{}`), now),
		"too old":          signedHeader(succeeded, now.Add(-10*time.Minute)),
		"wrong secret":     "t=1,v1=00",
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := g.ParseEvent(succeeded, header)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
