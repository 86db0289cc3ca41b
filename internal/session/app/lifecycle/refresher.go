package lifecycle

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/log"
)

const DefaultMaxRefreshAttempts = 3

// RetryPolicy describes how refresh attempts are spaced. The delay before
// attempt N is min(InitialDelay * 2^(N-1), MaxDelay).
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  DefaultMaxRefreshAttempts,
		InitialDelay: time.Second,
		MaxDelay:     5 * time.Second,
	}
}

func (p RetryPolicy) BackOff() backoff.BackOff {
	result := backoff.NewExponentialBackOff()
	result.InitialInterval = p.InitialDelay
	result.RandomizationFactor = 0
	result.Multiplier = 2
	result.MaxInterval = p.MaxDelay
	result.MaxElapsedTime = 0
	result.Reset()
	return result
}

type Refresher interface {
	Refresh(ctx context.Context) RefreshResult
	RefreshWithRetry(ctx context.Context, maxAttempts int) RefreshResult
}

type refresher struct {
	provider Provider
	policy   RetryPolicy
	logger   log.Logger
}

func NewRefresher(provider Provider, policy RetryPolicy, logger log.Logger) Refresher {
	return &refresher{
		provider: provider,
		policy:   policy,
		logger:   logger,
	}
}

func (r *refresher) Refresh(ctx context.Context) RefreshResult {
	return r.RefreshWithRetry(ctx, r.policy.MaxAttempts)
}

func (r *refresher) RefreshWithRetry(ctx context.Context, maxAttempts int) RefreshResult {
	if maxAttempts <= 0 {
		maxAttempts = r.policy.MaxAttempts
	}

	delays := r.policy.BackOff()
	var unknownRetried bool
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		session, err := r.provider.Refresh(ctx)
		if err == nil {
			return RefreshResult{Success: true, Session: session, RetryCount: attempt}
		}
		lastErr = err

		kind := domain.ClassifyError(err)
		if kind == domain.ErrorKindSessionToken || kind == domain.ErrorKindAuth {
			r.logger.WithError(err).Warn(ctx, "session refresh failed with terminal error")
			return RefreshResult{RetryCount: attempt, Err: err}
		}
		if kind == domain.ErrorKindUnknown {
			if unknownRetried {
				r.logger.WithError(err).Warn(ctx, "session refresh failed with repeated unknown error")
				return RefreshResult{RetryCount: attempt, Err: err}
			}
			unknownRetried = true
		}

		if attempt == maxAttempts {
			break
		}
		r.logger.WithError(err).WithField("attempt", attempt).Debug(ctx, "session refresh failed, retrying")
		if err := sleep(ctx, delays.NextBackOff()); err != nil {
			return RefreshResult{RetryCount: attempt, Err: err}
		}
	}

	return RefreshResult{RetryCount: maxAttempts, Err: lastErr}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
