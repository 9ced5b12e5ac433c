// Package gateway holds the PaymentGateway adapters: Stripe through its Go SDK
// and an offline mock for development. Both understand the same
// webhook body, the Stripe event envelope.
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"

	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
)

// eventEnvelope is the subset of a Stripe event the service reads.
type eventEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID               string `json:"id"`
			LastPaymentError *struct {
				Message string `json:"message"`
			} `json:"last_payment_error"`
			Charges *struct {
				Data []struct {
					ReceiptURL string `json:"receipt_url"`
				} `json:"data"`
			} `json:"charges"`
		} `json:"object"`
	} `json:"data"`
}

func decodeEvent(payload []byte) (ports.GatewayEvent, error) {
	var env eventEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return ports.GatewayEvent{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	if env.Type == "" {
		return ports.GatewayEvent{}, errs.NewValueIsRequiredErrorWithCause("payload", errors.New("event type is missing"))
	}

	event := ports.GatewayEvent{
		ID:        env.ID,
		Type:      ports.GatewayEventType(env.Type),
		Reference: env.Data.Object.ID,
	}
	if e := env.Data.Object.LastPaymentError; e != nil {
		event.FailureReason = e.Message
	}
	if c := env.Data.Object.Charges; c != nil && len(c.Data) > 0 {
		event.ReceiptURL = c.Data[0].ReceiptURL
	}

	if (event.Type == ports.EventPaymentSucceeded || event.Type == ports.EventPaymentFailed) && event.Reference == "" {
		return ports.GatewayEvent{}, errs.NewValueIsRequiredErrorWithCause("payload",
			fmt.Errorf("%s event without payment intent id", event.Type))
	}
	return event, nil
}
