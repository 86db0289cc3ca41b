package lifecycle

import (
	"context"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/clock"
	"github.com/placemarks-app/placemarks/pkg/log"
)

// Manager is the facade the rest of the application talks to.
type Manager interface {
	ValidateSession(ctx context.Context) ValidationResult
	RefreshSessionWithRetry(ctx context.Context, maxAttempts int) RefreshResult
	RecoverSession(ctx context.Context) ValidationResult
	ClearStaleSessionData(ctx context.Context) error
	ValidateSessionOnStartup(ctx context.Context) StartupResult
	NewMonitor(callbacks MonitorCallbacks) *Monitor
}

type manager struct {
	validator Validator
	refresher Refresher
	recoverer Recoverer
	probe     StartupProbe
	logger    log.Logger
}

func NewManager(
	provider Provider,
	store domain.Store,
	keyPrefix string,
	policy RetryPolicy,
	clk clock.Clock,
	logger log.Logger,
) Manager {
	validator := NewValidator(provider, clk)
	refresher := NewRefresher(provider, policy, logger)
	recoverer := NewRecoverer(validator, refresher, provider, store, keyPrefix, logger)
	return &manager{
		validator: validator,
		refresher: refresher,
		recoverer: recoverer,
		probe:     NewStartupProbe(validator, refresher, recoverer, provider, logger),
		logger:    logger,
	}
}

func (m *manager) ValidateSession(ctx context.Context) ValidationResult {
	return m.validator.Validate(ctx)
}

func (m *manager) RefreshSessionWithRetry(ctx context.Context, maxAttempts int) RefreshResult {
	return m.refresher.RefreshWithRetry(ctx, maxAttempts)
}

func (m *manager) RecoverSession(ctx context.Context) ValidationResult {
	return m.recoverer.Recover(ctx)
}

func (m *manager) ClearStaleSessionData(ctx context.Context) error {
	return m.recoverer.ClearStaleData(ctx)
}

func (m *manager) ValidateSessionOnStartup(ctx context.Context) StartupResult {
	return m.probe.ValidateOnStartup(ctx)
}

func (m *manager) NewMonitor(callbacks MonitorCallbacks) *Monitor {
	return NewMonitor(m.validator, m.refresher, callbacks, m.logger)
}
