package main

import (
	"context"

	sqlfeed "github.com/placemarks-app/placemarks/data/sql/feed"
	sqlplacemark "github.com/placemarks-app/placemarks/data/sql/placemark"
	"github.com/placemarks-app/placemarks/internal/feed"
	"github.com/placemarks-app/placemarks/internal/placemark"
	commoncmd "github.com/placemarks-app/placemarks/internal/pkg/cmd"
	"github.com/placemarks-app/placemarks/internal/session"
	pkgcmd "github.com/placemarks-app/placemarks/pkg/cmd"
	pkglazy "github.com/placemarks-app/placemarks/pkg/lazy"
	pkgmessage "github.com/placemarks-app/placemarks/pkg/message"
)

func main() {
	ctx := context.Background()
	infra := commoncmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	logger.Info(ctx, "app is starting")

	infra.DBMigrations.MustLoad().MustExecute(sqlplacemark.Migrations, sqlfeed.Migrations)

	msgProducer := pkglazy.New(func() (pkgmessage.Producer, error) {
		broker, err := infra.MessageBroker.Load()
		return broker, err
	})

	placemarkContainer := placemark.NewDependencyContainer(
		infra.DB,
		msgProducer,
		infra.HTTPClient,
		commoncmd.MustPlacesConfig(),
		infra.Clock,
	)
	feedContainer := feed.NewDependencyContainer(infra.DB)
	sessionContainer := session.NewDependencyContainer(
		infra.SessionStore,
		infra.HTTPClient,
		infra.Clock,
		infra.Logger,
		commoncmd.MustAuthConfig(),
	)

	httpServer := infra.HTTPServer.MustLoad()
	placemarkContainer.MustRegisterHTTPHandlers(httpServer)
	feedContainer.MustRegisterHTTPHandlers(httpServer)
	sessionContainer.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
