package main

import (
	"context"
	"time"

	sqlfeed "github.com/placemarks-app/placemarks/data/sql/feed"
	"github.com/placemarks-app/placemarks/internal/feed"
	commoncmd "github.com/placemarks-app/placemarks/internal/pkg/cmd"
	pkgcmd "github.com/placemarks-app/placemarks/pkg/cmd"
	"github.com/placemarks-app/placemarks/pkg/env"
)

const (
	defaultFeedRetention     = 30 * 24 * time.Hour
	defaultFeedPruneInterval = time.Hour
)

func main() {
	ctx := context.Background()
	infra := commoncmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	logger.Info(ctx, "app is starting")

	infra.DBMigrations.MustLoad().MustExecute(sqlfeed.Migrations)

	feedContainer := feed.NewDependencyContainer(infra.DB)
	listenerJob := feedContainer.MustEventListenerJob(infra.MessageBroker.MustLoad(), logger)
	pruneJob := feedContainer.MustEntryPruneJob(
		infra.Clock,
		env.ParseDurationDefault("FEED_RETENTION", defaultFeedRetention),
		env.ParseDurationDefault("FEED_PRUNE_INTERVAL", defaultFeedPruneInterval),
		logger,
	)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		listenerJob,
		pruneJob,
	)
}
