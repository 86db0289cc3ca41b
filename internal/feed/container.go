package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/placemarks-app/placemarks/internal/feed/app/message"
	"github.com/placemarks-app/placemarks/internal/feed/app/service"
	"github.com/placemarks-app/placemarks/internal/feed/infra/http"
	feedsql "github.com/placemarks-app/placemarks/internal/feed/infra/sql"
	"github.com/placemarks-app/placemarks/internal/placemark"
	"github.com/placemarks-app/placemarks/pkg/clock"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
	pkglazy "github.com/placemarks-app/placemarks/pkg/lazy"
	pkglog "github.com/placemarks-app/placemarks/pkg/log"
	pkgmessage "github.com/placemarks-app/placemarks/pkg/message"
	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
	pkgworker "github.com/placemarks-app/placemarks/pkg/worker"
)

const (
	DomainName = "feed"

	subscriberName = "feed-projection"
)

type DependencyContainer struct {
	FeedService pkglazy.Loader[*service.FeedService]

	getFeedHandler pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(db pkglazy.Loader[pkgsql.Database]) *DependencyContainer {
	feedService := pkglazy.New(func() (*service.FeedService, error) {
		return service.NewFeedService(feedsql.NewFeedRepo(db.MustLoad())), nil
	})

	return &DependencyContainer{
		FeedService: feedService,
		getFeedHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewGetFeedHandler(feedService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.getFeedHandler.MustLoad())
}

// MustEntryPruneJob periodically drops feed entries older than retention.
func (c *DependencyContainer) MustEntryPruneJob(
	clk clock.Clock,
	retention time.Duration,
	every time.Duration,
	logger pkglog.Logger,
) pkgworker.ErrorJob {
	feedService := c.FeedService.MustLoad()
	return pkgworker.PeriodicalJob(func(ctx context.Context) error {
		deleted, err := feedService.PruneOldEntries(ctx, clk.Now().Add(-retention))
		if err != nil {
			return fmt.Errorf("prune feed entries: %w", err)
		}
		if deleted > 0 {
			logger.WithField("deleted", deleted).Info(ctx, "old feed entries pruned")
		}
		return nil
	}, every, logger)
}

// MustEventListenerJob consumes placemark domain events and applies them
// to the feed projection.
func (c *DependencyContainer) MustEventListenerJob(
	consumers pkgmessage.ConsumerProvider,
	logger pkglog.Logger,
) pkgworker.ErrorJob {
	consumer, err := consumers.Consumer(
		placemark.DomainEventTopic,
		subscriberName,
		pkgmessage.ConsumptionTypeShared,
	)
	if err != nil {
		panic(fmt.Errorf("create %s consumer: %w", subscriberName, err))
	}

	listener := pkgmessage.NewListener(
		consumer,
		message.NewPlacemarkEventHandler(c.FeedService.MustLoad()),
		logger,
	)
	return listener.WorkerJob()
}
