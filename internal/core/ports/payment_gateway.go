package ports

import (
	"context"
)

// GatewayEventType names the gateway notifications the service reacts to.
type GatewayEventType string

const (
	EventPaymentSucceeded GatewayEventType = "payment_intent.succeeded"
	EventPaymentFailed    GatewayEventType = "payment_intent.payment_failed"
)

// IntentRequest asks the gateway to prepare a charge.
type IntentRequest struct {
	// AmountMinor is in the currency's minor units (cents).
	AmountMinor int64
	// Currency is lower-case, as gateways expect.
	Currency string
	Metadata map[string]string
}

// Intent is the gateway's answer to IntentRequest.
type Intent struct {
	Reference    string
	ClientSecret string
}

// GatewayEvent is a verified webhook notification.
type GatewayEvent struct {
	ID            string
	Type          GatewayEventType
	Reference     string
	ReceiptURL    string
	FailureReason string
}

// RefundReceipt identifies a refund at the gateway.
type RefundReceipt struct {
	Reference string
	Status    string
}

// PaymentGateway is an opaque card processor.
type PaymentGateway interface {
	// CreateIntent fails with UpstreamIsUnavailableError when the gateway cannot be reached.
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)

	// Refund returns the full amount of the intent to the customer.
	Refund(ctx context.Context, reference string) (RefundReceipt, error)

	// ParseEvent verifies signature over payload and decodes it. A bad
	// signature yields ValueIsInvalidError.
	ParseEvent(payload []byte, signature string) (GatewayEvent, error)
}
