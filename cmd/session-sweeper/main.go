package main

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	commoncmd "github.com/placemarks-app/placemarks/internal/pkg/cmd"
	"github.com/placemarks-app/placemarks/internal/session/app/sweeper"
	pkgcmd "github.com/placemarks-app/placemarks/pkg/cmd"
	"github.com/placemarks-app/placemarks/pkg/env"
	pkglog "github.com/placemarks-app/placemarks/pkg/log"
)

const defaultSweepSchedule = "@every 1h"

func main() {
	ctx := context.Background()
	infra := commoncmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	logger.Info(ctx, "app is starting")

	sweep := sweeper.New(infra.SessionSQLiteStore.MustLoad(), logger)
	schedule := env.ParseStringDefault("SWEEP_SCHEDULE", defaultSweepSchedule)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		sweepCronJob(schedule, sweep, logger),
	)
}

func sweepCronJob(schedule string, sweep *sweeper.Sweeper, logger pkglog.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		runSweep := func() {
			if err := sweep.Sweep(ctx); err != nil {
				logger.WithError(err).Error(ctx, "session sweep failed")
			}
		}

		scheduler := cron.New()
		_, err := scheduler.AddFunc(schedule, runSweep)
		if err != nil {
			return fmt.Errorf("schedule sweep job: %w", err)
		}

		runSweep()
		scheduler.Start()
		<-ctx.Done()
		<-scheduler.Stop().Done()
		return ctx.Err()
	}
}
