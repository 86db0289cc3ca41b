package placemark

import (
	"github.com/placemarks-app/placemarks/internal/placemark/app/external"
	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	"github.com/placemarks-app/placemarks/internal/placemark/infra/http"
	"github.com/placemarks-app/placemarks/internal/placemark/infra/places"
	placemarksql "github.com/placemarks-app/placemarks/internal/placemark/infra/sql"
	pkgclock "github.com/placemarks-app/placemarks/pkg/clock"
	pkgevent "github.com/placemarks-app/placemarks/pkg/event"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
	pkglazy "github.com/placemarks-app/placemarks/pkg/lazy"
	pkgmessage "github.com/placemarks-app/placemarks/pkg/message"
	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
)

const DomainName = "placemark"

// DomainEventTopic is where placemark domain events are published.
var DomainEventTopic = pkgmessage.NewTopic("event", pkgmessage.WithTopicDomainName(DomainName))

type DependencyContainer struct {
	PlacemarkService pkglazy.Loader[*service.PlacemarkService]

	createListHandler   pkglazy.Loader[pkghttp.Handler]
	updateListHandler   pkglazy.Loader[pkghttp.Handler]
	deleteListHandler   pkglazy.Loader[pkghttp.Handler]
	getListHandler      pkglazy.Loader[pkghttp.Handler]
	getListsHandler     pkglazy.Loader[pkghttp.Handler]
	savePlaceHandler    pkglazy.Loader[pkghttp.Handler]
	removePlaceHandler  pkglazy.Loader[pkghttp.Handler]
	listPlacesHandler   pkglazy.Loader[pkghttp.Handler]
	searchPlacesHandler pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Database],
	msgProducer pkglazy.Loader[pkgmessage.Producer],
	httpClient pkglazy.Loader[pkghttp.Client],
	placesConfig places.Config,
	clock pkgclock.Clock,
) *DependencyContainer {
	eventDispatcher := pkglazy.New(func() (pkgevent.Dispatcher, error) {
		return pkgmessage.NewEventDispatcher(
			msgProducer.MustLoad(),
			pkgmessage.NewJSONEventSerializer(DomainEventTopic),
		), nil
	})

	placemarkService := pkglazy.New(func() (*service.PlacemarkService, error) {
		var placesSearch external.PlacesSearch = places.NewService(httpClient.MustLoad(), placesConfig)
		return service.NewPlacemarkService(
			placesSearch,
			placemarksql.NewListRepo(db.MustLoad(), eventDispatcher.MustLoad()),
			placemarksql.NewSavedPlaceRepo(db.MustLoad(), eventDispatcher.MustLoad()),
			clock,
		), nil
	})

	handlerLoader := func(provider func(*service.PlacemarkService) pkghttp.Handler) pkglazy.Loader[pkghttp.Handler] {
		return pkglazy.New(func() (pkghttp.Handler, error) {
			return provider(placemarkService.MustLoad()), nil
		})
	}

	return &DependencyContainer{
		PlacemarkService:    placemarkService,
		createListHandler:   handlerLoader(http.NewCreateListHandler),
		updateListHandler:   handlerLoader(http.NewUpdateListHandler),
		deleteListHandler:   handlerLoader(http.NewDeleteListHandler),
		getListHandler:      handlerLoader(http.NewGetListHandler),
		getListsHandler:     handlerLoader(http.NewGetListsHandler),
		savePlaceHandler:    handlerLoader(http.NewSavePlaceHandler),
		removePlaceHandler:  handlerLoader(http.NewRemovePlaceHandler),
		listPlacesHandler:   handlerLoader(http.NewListPlacesHandler),
		searchPlacesHandler: handlerLoader(http.NewSearchPlacesHandler),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.createListHandler.MustLoad())
	registry.Register(c.updateListHandler.MustLoad())
	registry.Register(c.deleteListHandler.MustLoad())
	registry.Register(c.getListHandler.MustLoad())
	registry.Register(c.getListsHandler.MustLoad())
	registry.Register(c.savePlaceHandler.MustLoad())
	registry.Register(c.removePlaceHandler.MustLoad())
	registry.Register(c.listPlacesHandler.MustLoad())
	registry.Register(c.searchPlacesHandler.MustLoad())
}
