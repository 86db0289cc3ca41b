package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/placemarks-app/placemarks/pkg/log"
)

const defaultStartupTimeout = 5 * time.Second

// StartupProbe resolves the initial authentication state once per boot.
// The local session cache can lag behind the provider's server-side truth,
// so a failed local validation cascades to recovery and then to a direct
// identity call before the user is declared unauthenticated.
type StartupProbe interface {
	ValidateOnStartup(ctx context.Context) StartupResult
}

type startupProbe struct {
	validator Validator
	refresher Refresher
	recoverer Recoverer
	provider  Provider
	timeout   time.Duration
	logger    log.Logger
}

func NewStartupProbe(
	validator Validator,
	refresher Refresher,
	recoverer Recoverer,
	provider Provider,
	logger log.Logger,
) StartupProbe {
	return &startupProbe{
		validator: validator,
		refresher: refresher,
		recoverer: recoverer,
		provider:  provider,
		timeout:   defaultStartupTimeout,
		logger:    logger,
	}
}

func (p *startupProbe) ValidateOnStartup(ctx context.Context) StartupResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	validation := p.validator.Validate(ctx)
	if validation.Err != nil && errors.Is(validation.Err, context.DeadlineExceeded) {
		// The cache lookup hung, so ask the provider directly. A confirmed
		// identity without session tokens is an accepted degraded state.
		if user, err := p.provider.User(ctx); err == nil && user != nil {
			return StartupResult{IsAuthenticated: true, User: user}
		}
		return StartupResult{}
	}
	if validation.IsValid && validation.Session != nil {
		return StartupResult{
			IsAuthenticated: true,
			User:            validation.Session.User,
			Session:         validation.Session,
		}
	}

	recovery := p.recoverer.Recover(ctx)
	if recovery.IsValid && recovery.Session != nil {
		return StartupResult{
			IsAuthenticated: true,
			Recovered:       true,
			User:            recovery.Session.User,
			Session:         recovery.Session,
		}
	}

	user, err := p.provider.User(ctx)
	if err != nil || user == nil {
		return StartupResult{}
	}

	p.logger.Info(ctx, "identity confirmed without local session, reconstituting")
	if refresh := p.refresher.RefreshWithRetry(ctx, 1); refresh.Success {
		return StartupResult{
			IsAuthenticated: true,
			Recovered:       true,
			User:            user,
			Session:         refresh.Session,
		}
	}
	return StartupResult{IsAuthenticated: true, User: user}
}
