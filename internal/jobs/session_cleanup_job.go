package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// sessionSweeper is the part of the session store the cleanup job needs.
type sessionSweeper interface {
	Sweep(maxIdle time.Duration) int
}

// SessionCleanupJob evicts in-progress orders that have sat untouched for
// longer than the configured TTL. Runs once a minute. Sessions are normally
// cleared on completion; the sweep only reclaims conversations that were
// abandoned mid-order.
type SessionCleanupJob struct {
	store  sessionSweeper
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSessionCleanupJob creates a cleanup job over the given store.
// The ttl must be positive; a zero ttl means cleanup is disabled and the
// job should not be constructed at all.
func NewSessionCleanupJob(store sessionSweeper, ttl time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		store:  store,
		ttl:    ttl,
		cron:   cron.New(),
		logger: logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if evicted := j.store.Sweep(j.ttl); evicted > 0 {
			j.logger.InfoContext(ctx, "Evicted stale sessions", "count", evicted, "ttl", j.ttl)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
