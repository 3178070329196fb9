package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDraftCancellationJob cancels draft orders that were never submitted.
// Runs hourly and cancels drafts older than the configured retention.
type StaleDraftCancellationJob struct {
	handler   commands.CancelStaleDraftsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleDraftCancellationJob creates a new job for cleaning up abandoned drafts.
// Uses CancelStaleDraftsCommandHandler to cancel drafts older than retention.
func NewStaleDraftCancellationJob(
	handler commands.CancelStaleDraftsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *StaleDraftCancellationJob {
	return &StaleDraftCancellationJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_draft_cancellation_job"),
	}
}

// Start begins the stale draft cancellation job to run every hour.
func (j *StaleDraftCancellationJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleDraftsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft cancellation job misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft cancellation job failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale draft orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft cancellation job started (running hourly)",
		"retention", j.retention)
	return nil
}

// Stop stops the stale draft cancellation job.
func (j *StaleDraftCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale draft cancellation job stopped")
}
