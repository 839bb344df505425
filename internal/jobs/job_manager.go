package jobs

import (
	"fmt"
	"log/slog"

	"pizzaparty/internal/core/application/usecases/queries"
	"pizzaparty/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenReportJob *KitchenReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	waitingHandler queries.GetWaitingOrdersQueryHandler,
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenReportJob: NewKitchenReportJob(waitingHandler, uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenReportJob.Stop()
}
