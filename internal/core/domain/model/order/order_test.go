package order_test

import (
	"testing"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func validPricing(t *testing.T) order.Pricing {
	t.Helper()
	p, err := order.NewPricing(money(t, "150.00"), money(t, "45.50"), money(t, "12.25"))
	require.NoError(t, err)
	return p
}

func validDetails() order.Details {
	return order.Details{
		OrderType:       "suit",
		Description:     "Two-piece navy suit",
		MaterialSource:  order.MaterialFromTailor,
		MaterialDetails: map[string]any{"fabric": "wool"},
	}
}

func newOrder(t *testing.T) (*order.Order, order.Party, kernel.UUID) {
	t.Helper()
	customer := kernel.NewUUID()
	party := order.Party{TailorID: kernel.NewUUID(), UserID: kernel.NewUUID()}
	o, err := order.NewOrder(kernel.NewUUID(), customer, party, validDetails(), validPricing(t), now)
	require.NoError(t, err)
	return o, party, customer
}

func TestNewPricing(t *testing.T) {
	t.Run("total is the exact sum", func(t *testing.T) {
		p := validPricing(t)
		assert.Equal(t, "207.75", p.Total().String())
	})

	t.Run("tailoring price must be positive", func(t *testing.T) {
		_, err := order.NewPricing(kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects unconstructed parts", func(t *testing.T) {
		_, err := order.NewPricing(money(t, "10"), kernel.Money{}, kernel.ZeroMoney())
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending unpaid order", func(t *testing.T) {
		o, party, customer := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
		assert.Nil(t, o.PaymentID())
		assert.True(t, o.IsCustomer(customer))
		assert.True(t, o.IsTailor(party.UserID))
		assert.False(t, o.IsTailor(party.TailorID), "shop id is not a user id")
		assert.Equal(t, "207.75", o.Total().String())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should collect missing details", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.Party{TailorID: kernel.NewUUID(), UserID: kernel.NewUUID()},
			order.Details{}, validPricing(t), now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "orderType")
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "materialSource")
	})

	t.Run("should fail with invalid tailor party", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Party{}, validDetails(), validPricing(t), now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed pricing", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.Party{TailorID: kernel.NewUUID(), UserID: kernel.NewUUID()},
			validDetails(), order.Pricing{}, now)
		require.Error(t, err)
	})

	t.Run("details are copied", func(t *testing.T) {
		o, _, _ := newOrder(t)
		d := o.Details()
		d.MaterialDetails["fabric"] = "linen"
		assert.Equal(t, "wool", o.Details().MaterialDetails["fabric"])
	})
}

func TestRestoreOrder(t *testing.T) {
	paymentID := kernel.NewUUID()
	completed := now.Add(48 * time.Hour)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
		order.Party{TailorID: kernel.NewUUID(), UserID: kernel.NewUUID()},
		validDetails(), validPricing(t),
		order.State{Status: order.Delivered, PaymentStatus: order.InEscrow, PaymentID: &paymentID, ActualCompletion: &completed},
		now)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, order.InEscrow, o.PaymentStatus())
	assert.True(t, o.PaymentID().IsEqual(paymentID))
	assert.Equal(t, completed, *o.ActualCompletion())

	_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
		order.Party{TailorID: kernel.NewUUID(), UserID: kernel.NewUUID()},
		validDetails(), validPricing(t), order.State{}, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("follows the tailor workflow", func(t *testing.T) {
		o, _, _ := newOrder(t)

		require.NoError(t, o.UpdateStatus(order.Confirmed))
		require.NoError(t, o.UpdateStatus(order.InProgress))
		require.NoError(t, o.UpdateStatus(order.ReadyForDelivery))
		assert.Equal(t, order.ReadyForDelivery, o.Status())
	})

	t.Run("rejects skipping steps", func(t *testing.T) {
		o, _, _ := newOrder(t)

		err := o.UpdateStatus(order.InProgress)

		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
		assert.Contains(t, err.Error(), "order cannot move from pending to in_progress")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("side-effect statuses are not reachable directly", func(t *testing.T) {
		o, _, _ := newOrder(t)
		require.ErrorIs(t, o.UpdateStatus(order.Delivered), errs.ErrTransitionIsNotAllowed)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		o, _, _ := newOrder(t)
		require.NoError(t, o.UpdateStatus(order.Cancelled))
		require.ErrorIs(t, o.UpdateStatus(order.Confirmed), errs.ErrTransitionIsNotAllowed)
	})
}

func TestOrder_DeliverySideEffects(t *testing.T) {
	o, _, _ := newOrder(t)

	require.NoError(t, o.MarkPendingDelivery())
	assert.Equal(t, order.PendingDelivery, o.Status())

	require.NoError(t, o.MarkDelivered(now))
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, now, *o.ActualCompletion())
	require.ErrorIs(t, o.MarkPendingDelivery(), errs.ErrTransitionIsNotAllowed)

	require.NoError(t, o.UpdateStatus(order.Completed))
	require.ErrorIs(t, o.MarkDelivered(now), errs.ErrTransitionIsNotAllowed)
}

func TestOrder_PaymentSideEffects(t *testing.T) {
	t.Run("escrow then paid", func(t *testing.T) {
		o, _, _ := newOrder(t)
		paymentID := kernel.NewUUID()

		require.NoError(t, o.AttachPayment(paymentID))
		require.ErrorIs(t, o.MarkPaid(), errs.ErrTransitionIsNotAllowed)
		require.NoError(t, o.MarkPaymentInEscrow())
		require.NoError(t, o.MarkPaymentInEscrow(), "repeated gateway events are harmless")
		require.NoError(t, o.MarkPaid())

		assert.Equal(t, order.Paid, o.PaymentStatus())
		assert.True(t, o.PaymentID().IsEqual(paymentID))
		require.ErrorIs(t, o.CancelWithRefund(), errs.ErrTransitionIsNotAllowed)
	})

	t.Run("refund cancels", func(t *testing.T) {
		o, _, _ := newOrder(t)
		require.NoError(t, o.UpdateStatus(order.Confirmed))
		require.NoError(t, o.MarkPaymentInEscrow())

		require.NoError(t, o.CancelWithRefund())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.Refunded, o.PaymentStatus())
	})

	t.Run("attach rejects zero id", func(t *testing.T) {
		o, _, _ := newOrder(t)
		require.Error(t, o.AttachPayment(kernel.UUID{}))
	})
}
