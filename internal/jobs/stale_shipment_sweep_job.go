package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultSweepSchedule = "@every 1h"

// SweepRunner is satisfied by *commands.SweepStaleShipmentsCommandHandler.
type SweepRunner interface {
	Handle(ctx context.Context, cmd commands.SweepStaleShipmentsCommand) (commands.SweepStaleShipmentsResult, error)
}

// StaleShipmentSweepJob triggers the stale-shipment sweep on a cron schedule.
type StaleShipmentSweepJob struct {
	runner   SweepRunner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

func NewStaleShipmentSweepJob(runner SweepRunner, schedule string, logger *slog.Logger) *StaleShipmentSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StaleShipmentSweepJob{
		runner:   runner,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_shipment_sweep_job"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the sweep with the scheduler and starts it.
// Returns an error for an unparsable schedule.
func (j *StaleShipmentSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale shipment sweep job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep immediately.
func (j *StaleShipmentSweepJob) Run(ctx context.Context) error {
	cmd, err := commands.NewSweepStaleShipmentsCommand(j.now(), commands.SweepTriggerCron)
	if err != nil {
		return err
	}

	result, err := j.runner.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale shipment sweep failed",
			"delivered", len(result.Delivered),
			"error", err,
		)
		return err
	}
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *StaleShipmentSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale shipment sweep job stopped")
}
