package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob manages the scheduled re-dispatch of pending orders.
// Runs every second so an order left without a courier at creation time is
// picked up as soon as one activates nearby.
type OrderDispatchJob struct {
	handler commands.DispatchPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDispatchJob creates a new job for re-dispatching pending orders.
// Uses DispatchPendingOrderCommandHandler to assign the oldest pending order
// every second.
func NewOrderDispatchJob(handler commands.DispatchPendingOrderCommandHandler, logger *slog.Logger) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the order dispatch job to run every second.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingOrderCommand()

		assigned, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, services.ErrCourierNotFound) {
				j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Pending order assigned", "courier_id", assigned.ID().String())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every second)")
	return nil
}

// Stop stops the order dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
