package lifecycle

import (
	"context"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/log"
)

type Recoverer interface {
	Recover(ctx context.Context) ValidationResult
	ClearStaleData(ctx context.Context) error
}

type recoverer struct {
	validator Validator
	refresher Refresher
	provider  Provider
	store     domain.Store
	keyPrefix string
	logger    log.Logger
}

func NewRecoverer(
	validator Validator,
	refresher Refresher,
	provider Provider,
	store domain.Store,
	keyPrefix string,
	logger log.Logger,
) Recoverer {
	return &recoverer{
		validator: validator,
		refresher: refresher,
		provider:  provider,
		store:     store,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

func (r *recoverer) Recover(ctx context.Context) ValidationResult {
	validation := r.validator.Validate(ctx)
	if validation.IsValid && !validation.NeedsRefresh {
		return validation
	}

	refresh := r.refresher.Refresh(ctx)
	if refresh.Success {
		return ValidationResult{IsValid: true, Session: refresh.Session}
	}

	// The refresh token is unusable, so stale local credentials must go.
	if err := r.ClearStaleData(ctx); err != nil {
		r.logger.WithError(err).Error(ctx, "failed to clear stale session data")
	}
	return ValidationResult{Err: refresh.Err}
}

func (r *recoverer) ClearStaleData(ctx context.Context) error {
	if err := r.store.DeleteByPrefix(ctx, r.keyPrefix); err != nil {
		return err
	}
	if err := r.provider.SignOut(ctx); err != nil {
		r.logger.WithError(err).Warn(ctx, "provider sign-out failed during session cleanup")
	}
	return nil
}
