package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StalePendingExpiryJob cancels pending orders that no restaurant picked up
// within the configured age. Runs once a minute; the expiry command skips
// orders another actor moved forward concurrently, so overlapping runs are
// harmless.
type StalePendingExpiryJob struct {
	handler commands.ExpireStalePendingCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePendingExpiryJob creates the expiry job. maxAge is how long an
// order may sit in pending before it is auto-cancelled.
func NewStalePendingExpiryJob(
	handler commands.ExpireStalePendingCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StalePendingExpiryJob {
	return &StalePendingExpiryJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_pending_expiry_job"),
	}
}

// Start begins the expiry job on a once-a-minute schedule.
func (j *StalePendingExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStalePendingCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale pending expiry command rejected", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale pending expiry job failed", "error", handleErr)
			return
		}
		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *StalePendingExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending expiry job stopped")
}
