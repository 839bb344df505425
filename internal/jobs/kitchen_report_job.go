package jobs

import (
	"context"
	"log/slog"

	"pizzaparty/internal/core/application/usecases/queries"
	"pizzaparty/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// KitchenReportJob periodically logs the state of the kitchen: how many
// orders are waiting and whether the preparation slot is occupied. Runs
// every minute.
type KitchenReportJob struct {
	waitingHandler queries.GetWaitingOrdersQueryHandler
	uowFactory     ports.UnitOfWorkFactory
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewKitchenReportJob creates a new job reporting the kitchen workload.
func NewKitchenReportJob(
	waitingHandler queries.GetWaitingOrdersQueryHandler,
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) *KitchenReportJob {
	return &KitchenReportJob{
		waitingHandler: waitingHandler,
		uowFactory:     uowFactory,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "kitchen_report_job"),
	}
}

// Start begins the kitchen report job to run at the top of every minute.
func (j *KitchenReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		waiting, err := j.waitingHandler.Handle(ctx, queries.NewGetWaitingOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen report job failed", "error", err)
			return
		}

		// reads outside a transaction auto-commit
		preparingCount, err := j.uowFactory.Create().OrderRepository().CountInPreparingStatus(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Kitchen report",
			"waiting_orders", len(waiting),
			"slot_occupied", preparingCount > 0,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen report job started (running every minute)")
	return nil
}

// Stop stops the kitchen report job.
func (j *KitchenReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen report job stopped")
}
