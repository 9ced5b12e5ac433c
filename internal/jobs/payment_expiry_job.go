package jobs

import (
	"context"
	"log/slog"
	"time"

	"tailorshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentExpiryJob fails payment intents that stayed in processing past their TTL.
type PaymentExpiryJob struct {
	handler  commands.ExpireStalePaymentsCommandHandler
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPaymentExpiryJob(
	handler commands.ExpireStalePaymentsCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "payment_expiry_job"),
	}
}

func (j *PaymentExpiryJob) Start() error {
	cmd, err := commands.NewExpireStalePaymentsCommand(j.ttl)
	if err != nil {
		return err
	}
	_, err = j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job failed", "error", err)
			return
		}
		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale payments", "expired", expired)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Payment expiry job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

func (j *PaymentExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Payment expiry job stopped")
}
