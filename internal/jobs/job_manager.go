package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionCleanupJob *SessionCleanupJob
}

// NewJobManager creates a job manager. A non-positive sessionTTL disables
// session cleanup entirely: abandoned in-progress orders then live until
// the process restarts.
func NewJobManager(store sessionSweeper, sessionTTL time.Duration, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if sessionTTL > 0 {
		jm.sessionCleanupJob = NewSessionCleanupJob(store, sessionTTL, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.sessionCleanupJob != nil {
		if err := jm.sessionCleanupJob.Start(); err != nil {
			return fmt.Errorf("failed to start session cleanup job: %w", err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.sessionCleanupJob != nil {
		jm.sessionCleanupJob.Stop()
	}
}
