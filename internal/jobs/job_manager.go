package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs   []Job
	logger *slog.Logger
}

// NewJobManager wires the promotion sweep. Extra jobs may be appended.
func NewJobManager(
	expireHandler promotionExpirer,
	promotionSchedule string,
	logger *slog.Logger,
	extra ...Job,
) *JobManager {
	jobs := append([]Job{NewPromotionExpiryJob(expireHandler, promotionSchedule, logger)}, extra...)
	return &JobManager{jobs: jobs, logger: logger}
}

// StartAll starts every job. If one fails, the ones already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops all jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
