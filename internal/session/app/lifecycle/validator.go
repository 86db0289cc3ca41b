package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/clock"
)

const (
	defaultLookupTimeout    = 3 * time.Second
	defaultRefreshLookahead = 5 * time.Minute
)

type Validator interface {
	Validate(ctx context.Context) ValidationResult
}

type validator struct {
	provider  Provider
	clock     clock.Clock
	timeout   time.Duration
	lookahead time.Duration
}

func NewValidator(provider Provider, clk clock.Clock) Validator {
	return &validator{
		provider:  provider,
		clock:     clk,
		timeout:   defaultLookupTimeout,
		lookahead: defaultRefreshLookahead,
	}
}

func (v *validator) Validate(ctx context.Context) ValidationResult {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	session, err := v.provider.Session(ctx)
	if err != nil {
		// A slow or failing lookup is treated as no session, not as a hard failure.
		if errors.Is(err, domain.ErrSessionNotFound) {
			return ValidationResult{}
		}
		return ValidationResult{Err: err}
	}
	if session == nil {
		return ValidationResult{}
	}

	expiry := session.Expiry()
	if expiry.IsZero() {
		return ValidationResult{Session: session}
	}

	now := v.clock.Now()
	if !expiry.After(now) {
		return ValidationResult{IsExpired: true, NeedsRefresh: true, Session: session}
	}

	return ValidationResult{
		IsValid:      true,
		NeedsRefresh: expiry.Sub(now) <= v.lookahead,
		Session:      session,
	}
}
