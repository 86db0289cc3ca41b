package session

import (
	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle"
	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/internal/session/infra/gotrue"
	"github.com/placemarks-app/placemarks/internal/session/infra/http"
	pkgclock "github.com/placemarks-app/placemarks/pkg/clock"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
	pkglazy "github.com/placemarks-app/placemarks/pkg/lazy"
	pkglog "github.com/placemarks-app/placemarks/pkg/log"
)

const DomainName = "session"

type DependencyContainer struct {
	AuthClient     pkglazy.Loader[*gotrue.Client]
	SessionManager pkglazy.Loader[lifecycle.Manager]

	signInHandler     pkglazy.Loader[pkghttp.Handler]
	getSessionHandler pkglazy.Loader[pkghttp.Handler]
	refreshHandler    pkglazy.Loader[pkghttp.Handler]
	signOutHandler    pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	store pkglazy.Loader[domain.Store],
	httpClient pkglazy.Loader[pkghttp.Client],
	clock pkgclock.Clock,
	logger pkglazy.Loader[pkglog.Logger],
	config gotrue.Config,
) *DependencyContainer {
	authClient := pkglazy.New(func() (*gotrue.Client, error) {
		return gotrue.NewClient(httpClient.MustLoad(), store.MustLoad(), clock, config), nil
	})

	sessionManager := pkglazy.New(func() (lifecycle.Manager, error) {
		return lifecycle.NewManager(
			authClient.MustLoad(),
			store.MustLoad(),
			config.KeyPrefix,
			lifecycle.DefaultRetryPolicy(),
			clock,
			logger.MustLoad(),
		), nil
	})

	return &DependencyContainer{
		AuthClient:     authClient,
		SessionManager: sessionManager,
		signInHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewSignInHandler(authClient.MustLoad()), nil
		}),
		getSessionHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewGetSessionHandler(sessionManager.MustLoad()), nil
		}),
		refreshHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewRefreshHandler(sessionManager.MustLoad()), nil
		}),
		signOutHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewSignOutHandler(sessionManager.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.signInHandler.MustLoad())
	registry.Register(c.getSessionHandler.MustLoad())
	registry.Register(c.refreshHandler.MustLoad())
	registry.Register(c.signOutHandler.MustLoad())
}
