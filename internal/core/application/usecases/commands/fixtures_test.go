package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"tailorshop/internal/core/domain/model/delivery"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/material"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/core/domain/model/tailor"
	"tailorshop/internal/core/domain/model/user"
)

func principal(t *testing.T, role user.Role) user.Principal {
	t.Helper()
	p, err := user.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newShop(t *testing.T, ownerID kernel.UUID) *tailor.Tailor {
	t.Helper()
	shop, err := tailor.NewTailor(kernel.NewUUID(), ownerID, tailor.DefaultProfile("Stitch & Co"), nil)
	require.NoError(t, err)
	return shop
}

func newMaterial(t *testing.T, shopID kernel.UUID, price string, yards int64) *material.Material {
	t.Helper()
	m, err := material.NewMaterial(
		kernel.NewUUID(),
		shopID,
		material.Details{Name: "Navy wool", Type: "wool"},
		money(t, price),
		decimal.NewFromInt(yards),
	)
	require.NoError(t, err)
	return m
}

func newOrder(t *testing.T, customerID kernel.UUID, tailorUserID kernel.UUID, state order.State) *order.Order {
	t.Helper()
	pricing, err := order.NewPricing(money(t, "200.00"), money(t, "45.00"), money(t, "15.00"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		order.Party{TailorID: kernel.NewUUID(), UserID: tailorUserID},
		order.Details{OrderType: "suit", Description: "Two-piece navy suit", MaterialSource: order.MaterialFromTailor},
		pricing,
		state,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func newDelivery(t *testing.T, orderID kernel.UUID, status delivery.Status, riderID *kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(),
		orderID,
		delivery.Addresses{Pickup: "12 Savile Row", Delivery: "221B Baker St"},
		money(t, "15.00"),
		"",
		time.Now().UTC(),
		delivery.Snapshot{Status: status, TrackingCode: delivery.NewTrackingCode(), RiderID: riderID},
	)
	require.NoError(t, err)
	return d
}

func newPayment(
	t *testing.T,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	status payment.Status,
	heldAt *time.Time,
	createdAt time.Time,
) *payment.Payment {
	t.Helper()
	p, err := payment.RestorePayment(
		kernel.NewUUID(),
		orderID,
		customerID,
		money(t, "260.00"),
		payment.DefaultCurrency,
		createdAt,
		payment.Snapshot{
			GatewayReference: "pi_" + kernel.NewUUID().String(),
			Status:           status,
			HeldAt:           heldAt,
			TransactionFee:   kernel.ZeroMoney(),
		},
	)
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T {
	return &v
}

var fixedNow = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
