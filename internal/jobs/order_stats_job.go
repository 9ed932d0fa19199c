package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically reports order volume and shipping revenue.
// Runs every hour and logs how many orders were created in the preceding day.
type OrderStatsJob struct {
	handler queries.OrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a new job for order stats reporting.
func NewOrderStatsJob(handler queries.OrderStatsQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the order stats job to run at the top of every hour.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewOrderStatsQuery(time.Now().UTC().Add(-24 * time.Hour))
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed to build query", "error", err)
			return
		}

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Orders created in the last 24 hours",
			"count", stats.Count,
			"shipping_revenue", stats.TotalShippingPrice.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running hourly)")
	return nil
}

// Stop stops the order stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
