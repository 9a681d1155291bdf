package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	autoAdvanceJob *AutoAdvanceJob
}

// NewJobManager creates a job manager owning the auto-progression job.
func NewJobManager(autoAdvanceJob *AutoAdvanceJob) *JobManager {
	return &JobManager{autoAdvanceJob: autoAdvanceJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.autoAdvanceJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto advance job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoAdvanceJob.Stop()
}
