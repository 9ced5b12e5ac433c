package jobs

import (
	"context"
	"log/slog"
	"time"

	"tailorshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EscrowReleaseJob releases escrowed payments whose hold period has elapsed.
type EscrowReleaseJob struct {
	handler    commands.AutoReleaseEscrowCommandHandler
	schedule   string
	holdPeriod time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewEscrowReleaseJob(
	handler commands.AutoReleaseEscrowCommandHandler,
	schedule string,
	holdPeriod time.Duration,
	logger *slog.Logger,
) *EscrowReleaseJob {
	return &EscrowReleaseJob{
		handler:    handler,
		schedule:   schedule,
		holdPeriod: holdPeriod,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "escrow_release_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *EscrowReleaseJob) Start() error {
	cmd, err := commands.NewAutoReleaseEscrowCommand(j.holdPeriod)
	if err != nil {
		return err
	}
	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Escrow release job started", "schedule", j.schedule, "hold_period", j.holdPeriod)
	return nil
}

func (j *EscrowReleaseJob) run(ctx context.Context, cmd commands.AutoReleaseEscrowCommand) {
	released, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Escrow release job failed", "error", err, "released", released)
		return
	}
	if released > 0 {
		j.logger.InfoContext(ctx, "Released escrowed payments", "released", released)
	}
}

// Stop waits for a running release to finish.
func (j *EscrowReleaseJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Escrow release job stopped")
}
