package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newPayment(t *testing.T) *Payment {
	t.Helper()
	orderID := kernel.NewUUID()
	p, err := NewPayment(kernel.NewUUID(), &orderID, kernel.NewUUID(), mustMoney(t, "120.50"), "usd", now)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	p := newPayment(t)

	assert.Equal(t, Pending, p.Status())
	assert.Equal(t, Currency("USD"), p.Currency())
	assert.Equal(t, "card", p.Method())
	assert.Equal(t, "120.50", p.Amount().String())
	assert.NotNil(t, p.OrderID())
	assert.Equal(t, 0, p.Version())
	assert.NoError(t, p.Validate())
}

func TestNewPayment_WithoutOrder(t *testing.T) {
	p, err := NewPayment(kernel.NewUUID(), nil, kernel.NewUUID(), mustMoney(t, "10"), "", now)
	require.NoError(t, err)

	assert.Nil(t, p.OrderID())
	assert.Equal(t, DefaultCurrency, p.Currency())
}

func TestNewPayment_RejectsNonPositiveAmount(t *testing.T) {
	_, err := NewPayment(kernel.NewUUID(), nil, kernel.NewUUID(), kernel.ZeroMoney(), "usd", now)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestPayment_Lifecycle(t *testing.T) {
	p := newPayment(t)

	require.NoError(t, p.StartProcessing("pi_123"))
	assert.Equal(t, Processing, p.Status())
	assert.Equal(t, "pi_123", p.GatewayReference())

	held := now.Add(time.Hour)
	require.NoError(t, p.HoldInEscrow("https://receipts.example/1", held))
	assert.Equal(t, HeldInEscrow, p.Status())
	assert.Equal(t, held, *p.HeldAt())
	assert.Equal(t, "https://receipts.example/1", p.ReceiptURL())

	// repeated confirmation
	require.NoError(t, p.HoldInEscrow("", held.Add(time.Minute)))
	assert.Equal(t, held, *p.HeldAt())

	released := held.Add(24 * time.Hour)
	require.NoError(t, p.Release(released))
	assert.Equal(t, Released, p.Status())
	assert.Equal(t, released, *p.EscrowReleaseDate())
}

func TestPayment_StartProcessing_RequiresReference(t *testing.T) {
	p := newPayment(t)
	assert.ErrorIs(t, p.StartProcessing("  "), errs.ErrValueIsRequired)
	assert.Equal(t, Pending, p.Status())
}

func TestPayment_ReleaseFromProcessingIsRejected(t *testing.T) {
	p := newPayment(t)
	require.NoError(t, p.StartProcessing("pi_1"))

	err := p.Release(now)
	assert.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
	assert.Equal(t, Processing, p.Status())
	assert.Nil(t, p.EscrowReleaseDate())
}

func TestPayment_RefundFromReleasedIsRejected(t *testing.T) {
	p := newPayment(t)
	require.NoError(t, p.StartProcessing("pi_1"))
	require.NoError(t, p.HoldInEscrow("", now))
	require.NoError(t, p.Release(now))

	assert.False(t, p.CanRefund())
	assert.ErrorIs(t, p.Refund(), errs.ErrTransitionIsNotAllowed)
}

func TestPayment_RefundFromProcessing(t *testing.T) {
	p := newPayment(t)
	require.NoError(t, p.StartProcessing("pi_1"))

	assert.True(t, p.CanRefund())
	require.NoError(t, p.Refund())
	assert.Equal(t, Refunded, p.Status())
}

func TestPayment_Fail(t *testing.T) {
	p := newPayment(t)
	require.NoError(t, p.StartProcessing("pi_1"))

	require.NoError(t, p.Fail("card_declined"))
	assert.Equal(t, Failed, p.Status())
	assert.Equal(t, "card_declined", p.Notes())

	assert.ErrorIs(t, p.Fail(""), errs.ErrTransitionIsNotAllowed)
}

func TestPayment_Timers(t *testing.T) {
	p := newPayment(t)
	assert.False(t, p.IsStale(time.Hour, now.Add(59*time.Minute)))
	assert.True(t, p.IsStale(time.Hour, now.Add(time.Hour)))

	require.NoError(t, p.StartProcessing("pi_1"))
	require.NoError(t, p.HoldInEscrow("", now))
	assert.False(t, p.IsStale(time.Hour, now.Add(2*time.Hour)))
	assert.False(t, p.IsHeldLongerThan(48*time.Hour, now.Add(47*time.Hour)))
	assert.True(t, p.IsHeldLongerThan(48*time.Hour, now.Add(48*time.Hour)))
}

func TestRestorePayment(t *testing.T) {
	held := now.Add(time.Hour)
	p, err := RestorePayment(kernel.NewUUID(), nil, kernel.NewUUID(), mustMoney(t, "50"), "USD", now, Snapshot{
		GatewayReference: "pi_9",
		Status:           HeldInEscrow,
		HeldAt:           &held,
		TransactionFee:   mustMoney(t, "1.75"),
		Version:          3,
	})
	require.NoError(t, err)

	assert.Equal(t, HeldInEscrow, p.Status())
	assert.Equal(t, 3, p.Version())
	assert.Equal(t, "card", p.Method())
	assert.Equal(t, "1.75", p.TransactionFee().String())

	p.IncrementVersion()
	assert.Equal(t, 4, p.Version())
}

func TestRestorePayment_RequiresReferenceOutsidePending(t *testing.T) {
	_, err := RestorePayment(kernel.NewUUID(), nil, kernel.NewUUID(), mustMoney(t, "50"), "USD", now, Snapshot{
		Status:         Processing,
		TransactionFee: kernel.ZeroMoney(),
	})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestorePayment_FailedBeforeGateway(t *testing.T) {
	p, err := RestorePayment(kernel.NewUUID(), nil, kernel.NewUUID(), mustMoney(t, "50"), "USD", now, Snapshot{
		Status:         Failed,
		TransactionFee: kernel.ZeroMoney(),
		Notes:          "payment intent expired",
	})
	require.NoError(t, err)
	assert.Equal(t, Failed, p.Status())
	assert.Empty(t, p.GatewayReference())
}

func TestPayment_NotConstructed(t *testing.T) {
	var p *Payment
	assert.ErrorIs(t, p.Validate(), ErrPaymentIsNotConstructed)
	assert.ErrorIs(t, (&Payment{}).Validate(), ErrPaymentIsNotConstructed)
}
