package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob periodically marks shipped orders whose estimated
// delivery time has passed as delivered.
type DeliveryCompletionJob struct {
	handler commands.CompleteDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCompletionJob creates the job that completes overdue shipments.
func NewDeliveryCompletionJob(handler commands.CompleteDeliveriesCommandHandler, logger *slog.Logger) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run every ten seconds.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every ten seconds)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
