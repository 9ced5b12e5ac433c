package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tailorshop/internal/core/application/usecases/commands"
)

// Schedules holds the cron specs (with a leading seconds field) and the
// durations the payment jobs act on.
type Schedules struct {
	EscrowRelease    string
	EscrowHoldPeriod time.Duration
	PaymentExpiry    string
	PaymentIntentTTL time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	escrowReleaseJob *EscrowReleaseJob
	paymentExpiryJob *PaymentExpiryJob
}

func NewJobManager(
	autoReleaseHandler commands.AutoReleaseEscrowCommandHandler,
	expireHandler commands.ExpireStalePaymentsCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		escrowReleaseJob: NewEscrowReleaseJob(autoReleaseHandler, schedules.EscrowRelease, schedules.EscrowHoldPeriod, logger),
		paymentExpiryJob: NewPaymentExpiryJob(expireHandler, schedules.PaymentExpiry, schedules.PaymentIntentTTL, logger),
	}
}

// StartAll starts all scheduled jobs. When one fails to start, the jobs
// already running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.escrowReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start escrow release job: %w", err)
	}

	if err := jm.paymentExpiryJob.Start(); err != nil {
		jm.escrowReleaseJob.Stop()
		return fmt.Errorf("failed to start payment expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to return.
func (jm *JobManager) StopAll() {
	jm.paymentExpiryJob.Stop()
	jm.escrowReleaseJob.Stop()
}
