package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/ports"
)

// MockGateway accepts every charge without any network call. Webhook bodies
// are decoded like Stripe's but signatures are not checked, so events can be
// posted by hand during development.
type MockGateway struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewMockGateway(logger *slog.Logger) *MockGateway {
	return &MockGateway{
		logger: logger.With("component", "MockGateway"),
		now:    time.Now,
	}
}

func (g *MockGateway) CreateIntent(ctx context.Context, req ports.IntentRequest) (ports.Intent, error) {
	stamp := g.now().UnixMilli()
	intent := ports.Intent{
		Reference:    "mock_payment_" + kernel.NewUUID().String(),
		ClientSecret: fmt.Sprintf("mock_client_secret_%d", stamp),
	}

	g.logger.InfoContext(ctx, "mock payment intent created",
		"reference", intent.Reference, "amountMinor", req.AmountMinor, "currency", req.Currency)
	return intent, nil
}

func (g *MockGateway) Refund(ctx context.Context, reference string) (ports.RefundReceipt, error) {
	g.logger.InfoContext(ctx, "mock refund issued", "reference", reference)
	return ports.RefundReceipt{
		Reference: "mock_refund_" + kernel.NewUUID().String(),
		Status:    "succeeded",
	}, nil
}

func (g *MockGateway) ParseEvent(payload []byte, _ string) (ports.GatewayEvent, error) {
	return decodeEvent(payload)
}
