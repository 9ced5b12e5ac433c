package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"tailorshop/internal/adapters/out/postgres/paymentrepo"
	"tailorshop/internal/adapters/out/postgres/pgtest"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/payment"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *paymentrepo.GormPaymentRepository
	now        time.Time
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.database.DB, pgtest.NopTracker{})
	suite.now = time.Now().UTC().Truncate(time.Second)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_PendingPaymentHasNoReference() {
	ctx := context.Background()
	orderID := suite.seedOrderID()

	// Two pending rows share the NULL reference without tripping the unique constraint.
	first := suite.newPayment(&orderID, suite.now)
	second := suite.newPayment(nil, suite.now)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	stored, err := suite.repository.Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Pending, stored.Status())
	suite.Empty(stored.GatewayReference())
	suite.Equal("260.00", stored.Amount().String())
	suite.Equal(payment.Currency("EUR"), stored.Currency())
	suite.Equal("card", stored.Method())

	orphan, err := suite.repository.Get(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Nil(orphan.OrderID())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_EscrowLifecycleAndReferenceLookup() {
	ctx := context.Background()
	orderID := suite.seedOrderID()
	p := suite.newPayment(&orderID, suite.now)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.StartProcessing("pi_123"))
	suite.Require().NoError(suite.repository.Update(ctx, p))
	suite.Require().NoError(p.HoldInEscrow("https://receipts.example/pi_123", suite.now))
	suite.Require().NoError(suite.repository.Update(ctx, p))
	suite.Equal(2, p.Version())

	stored, err := suite.repository.GetByGatewayReference(ctx, "pi_123")
	suite.Require().NoError(err)
	suite.Equal(payment.HeldInEscrow, stored.Status())
	suite.Equal("https://receipts.example/pi_123", stored.ReceiptURL())
	suite.Require().NotNil(stored.HeldAt())
	suite.True(suite.now.Equal(*stored.HeldAt()))
	suite.Equal(2, stored.Version())

	_, err = suite.repository.GetByGatewayReference(ctx, "pi_unknown")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_StaleVersionIsRejected() {
	ctx := context.Background()
	p := suite.newPayment(nil, suite.now)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	stale, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(p.StartProcessing("pi_1"))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	suite.Require().NoError(stale.Fail("card declined"))
	err = suite.repository.Update(ctx, stale)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByOrder_ReturnsNewest() {
	ctx := context.Background()
	orderID := suite.seedOrderID()

	older := suite.newPayment(&orderID, suite.now.Add(-time.Hour))
	suite.Require().NoError(older.Fail("expired"))
	newer := suite.newPayment(&orderID, suite.now)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	stored, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(newer.ID(), stored.ID())

	_, err = suite.repository.GetByOrder(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestListHeldSince_UsesHoldTime() {
	ctx := context.Background()
	cutoff := suite.now.Add(-7 * 24 * time.Hour)

	due := suite.heldPayment("pi_due", cutoff.Add(-time.Minute))
	onCutoff := suite.heldPayment("pi_edge", cutoff)
	suite.heldPayment("pi_recent", cutoff.Add(time.Minute))

	pending := suite.newPayment(nil, cutoff.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	held, err := suite.repository.ListHeldSince(ctx, cutoff)
	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{due.ID(), onCutoff.ID()}, paymentIDs(held))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestListUnconfirmedSince_PendingAndProcessingOnly() {
	ctx := context.Background()
	cutoff := suite.now.Add(-30 * time.Minute)

	pending := suite.newPayment(nil, cutoff.Add(-time.Minute))
	processing := suite.newPayment(nil, cutoff.Add(-time.Minute))
	suite.Require().NoError(processing.StartProcessing("pi_proc"))
	fresh := suite.newPayment(nil, cutoff.Add(time.Minute))
	failed := suite.newPayment(nil, cutoff.Add(-time.Hour))
	suite.Require().NoError(failed.Fail("declined"))

	for _, p := range []*payment.Payment{pending, processing, fresh, failed} {
		suite.Require().NoError(suite.repository.Add(ctx, p))
	}

	stale, err := suite.repository.ListUnconfirmedSince(ctx, cutoff)
	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{pending.ID(), processing.ID()}, paymentIDs(stale))
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGet_LocksRowInsideTransaction() {
	ctx := context.Background()
	p := suite.heldPayment("pi_locked", suite.now)

	holder := suite.database.DB.Begin()
	suite.Require().NoError(holder.Error)
	defer holder.Rollback()

	_, err := paymentrepo.NewGormPaymentRepository(holder, pgtest.NopTracker{}).Get(ctx, p.ID())
	suite.Require().NoError(err)

	waiter := suite.database.DB.Begin()
	suite.Require().NoError(waiter.Error)
	defer waiter.Rollback()
	suite.Require().NoError(waiter.Exec("SET LOCAL lock_timeout = '200ms'").Error)

	_, err = paymentrepo.NewGormPaymentRepository(waiter, pgtest.NopTracker{}).GetByGatewayReference(ctx, "pi_locked")
	suite.Require().Error(err)
	suite.NotErrorIs(err, errs.ErrObjectNotFound)

	// Outside a transaction nothing is locked, so plain reads still pass.
	_, err = suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
}

func (suite *PaymentRepositoryIntegrationTestSuite) heldPayment(reference string, heldAt time.Time) *payment.Payment {
	p := suite.newPayment(nil, heldAt.Add(-time.Hour))
	suite.Require().NoError(p.StartProcessing(reference))
	suite.Require().NoError(p.HoldInEscrow("", heldAt))
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func (suite *PaymentRepositoryIntegrationTestSuite) seedOrderID() kernel.UUID {
	o, err := pgtest.SeedOrder(context.Background(), suite.database.DB, suite.now)
	suite.Require().NoError(err)
	return o.ID()
}

func (suite *PaymentRepositoryIntegrationTestSuite) newPayment(orderID *kernel.UUID, createdAt time.Time) *payment.Payment {
	amount, err := kernel.MoneyFromString("260.00")
	suite.Require().NoError(err)

	p, err := payment.NewPayment(kernel.NewUUID(), orderID, kernel.NewUUID(), amount, payment.Currency("eur"), createdAt)
	suite.Require().NoError(err)
	return p
}

func paymentIDs(payments []*payment.Payment) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(payments))
	for _, p := range payments {
		out = append(out, p.ID())
	}
	return out
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
