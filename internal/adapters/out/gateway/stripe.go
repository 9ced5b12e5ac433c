package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/refund"
	"github.com/stripe/stripe-go/v80/webhook"

	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

const (
	DefaultStripeURL = stripe.APIURL

	// signatureTolerance bounds the age of a signed webhook.
	signatureTolerance = 5 * time.Minute
	requestTimeout     = 15 * time.Second
)

// StripeConfig configures StripeGateway.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// APIURL defaults to DefaultStripeURL.
	APIURL string
}

// StripeGateway talks to Stripe through the official SDK. Requests are not
// retried by the SDK; callers see the first failure.
type StripeGateway struct {
	intents       *paymentintent.Client
	refunds       *refund.Client
	webhookSecret string
	logger        *slog.Logger
}

func NewStripeGateway(cfg StripeConfig, logger *slog.Logger) (*StripeGateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errs.NewValueIsRequiredError("STRIPE_SECRET_KEY")
	}
	if strings.TrimSpace(cfg.WebhookSecret) == "" {
		return nil, errs.NewValueIsRequiredError("STRIPE_WEBHOOK_SECRET")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultStripeURL
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(strings.TrimRight(cfg.APIURL, "/")),
		HTTPClient:        &http.Client{Timeout: requestTimeout},
		MaxNetworkRetries: stripe.Int64(0),
		EnableTelemetry:   stripe.Bool(false),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	return &StripeGateway{
		intents:       &paymentintent.Client{B: backend, Key: cfg.SecretKey},
		refunds:       &refund.Client{B: backend, Key: cfg.SecretKey},
		webhookSecret: cfg.WebhookSecret,
		logger:        logger.With("component", "StripeGateway"),
	}, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req ports.IntentRequest) (ports.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinor),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if key := req.Metadata["paymentId"]; key != "" {
		params.SetIdempotencyKey(key)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		return ports.Intent{}, g.mapError(ctx, "payment_intents", err)
	}
	if pi.ID == "" || pi.ClientSecret == "" {
		return ports.Intent{}, errs.NewUpstreamIsUnavailableError("stripe",
			errors.New("payment intent response without id or client secret"))
	}

	return ports.Intent{Reference: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) Refund(ctx context.Context, reference string) (ports.RefundReceipt, error) {
	params := &stripe.RefundParams{PaymentIntent: stripe.String(reference)}
	params.Context = ctx
	params.SetIdempotencyKey("refund-" + reference)

	r, err := g.refunds.New(params)
	if err != nil {
		return ports.RefundReceipt{}, g.mapError(ctx, "refunds", err)
	}
	return ports.RefundReceipt{Reference: r.ID, Status: string(r.Status)}, nil
}

// ParseEvent verifies the Stripe-Signature header before decoding the body.
// Events signed under another API version are accepted; only the intent id,
// receipt and failure message are read.
func (g *StripeGateway) ParseEvent(payload []byte, signature string) (ports.GatewayEvent, error) {
	_, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                signatureTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return ports.GatewayEvent{}, errs.NewValueIsInvalidErrorWithCause("signature", err)
	}
	return decodeEvent(payload)
}

// mapError turns request and card errors into validation failures; auth,
// rate limits, outages and transport errors mean the gateway is unusable.
func (g *StripeGateway) mapError(ctx context.Context, resource string, err error) error {
	var serr *stripe.Error
	if !errors.As(err, &serr) {
		g.logger.ErrorContext(ctx, "stripe request failed", "resource", resource, "error", err)
		return errs.NewUpstreamIsUnavailableError("stripe", err)
	}

	g.logger.WarnContext(ctx, "stripe rejected request",
		"resource", resource, "status", serr.HTTPStatusCode, "type", serr.Type, "code", serr.Code)

	cause := fmt.Errorf("stripe %d: %s", serr.HTTPStatusCode, serr.Msg)
	switch serr.Type {
	case stripe.ErrorTypeCard, stripe.ErrorTypeInvalidRequest:
		if serr.HTTPStatusCode != http.StatusUnauthorized && serr.HTTPStatusCode != http.StatusForbidden {
			return errs.NewValueIsInvalidErrorWithCause("payment", cause)
		}
	}
	return errs.NewUpstreamIsUnavailableError("stripe", cause)
}
