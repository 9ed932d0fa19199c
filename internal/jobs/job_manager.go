package jobs

import (
	"fmt"
	"log/slog"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(statsHandler queries.OrderStatsQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
