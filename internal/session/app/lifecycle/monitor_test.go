package lifecycle_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle"
	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle/mock"
	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/clock"
	"github.com/placemarks-app/placemarks/pkg/log"
)

const (
	monitorTestInterval = 10 * time.Millisecond
	monitorTestTimeout  = 2 * time.Second
)

func TestMonitor_NotifiesWhenSessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	providerMock := mock.NewProvider(ctrl)
	providerMock.EXPECT().Session(gomock.Any()).
		Return(&domain.Session{ExpiresAt: now.Add(-time.Minute).Unix()}, nil).
		AnyTimes()

	expired := make(chan struct{}, 1)
	monitor := newTestMonitor(providerMock, clock.Fixed(now), lifecycle.MonitorCallbacks{
		OnSessionExpired: func() {
			select {
			case expired <- struct{}{}:
			default:
			}
		},
	})

	monitor.Start(t.Context(), monitorTestInterval)
	defer monitor.Stop()

	select {
	case <-expired:
	case <-time.After(monitorTestTimeout):
		t.Fatal("expected the expiry callback to fire")
	}
}

func TestMonitor_RefreshesProactively(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	staleSession := &domain.Session{ExpiresAt: now.Add(time.Minute).Unix()}
	freshSession := &domain.Session{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour).Unix()}

	providerMock := mock.NewProvider(ctrl)
	providerMock.EXPECT().Session(gomock.Any()).Return(staleSession, nil).AnyTimes()
	providerMock.EXPECT().Refresh(gomock.Any()).Return(freshSession, nil).AnyTimes()

	refreshed := make(chan *domain.Session, 1)
	monitor := newTestMonitor(providerMock, clock.Fixed(now), lifecycle.MonitorCallbacks{
		OnSessionRefreshed: func(session *domain.Session) {
			select {
			case refreshed <- session:
			default:
			}
		},
	})

	monitor.Start(t.Context(), monitorTestInterval)
	defer monitor.Stop()

	select {
	case session := <-refreshed:
		assert.Equal(t, freshSession, session)
	case <-time.After(monitorTestTimeout):
		t.Fatal("expected the refresh callback to fire")
	}
}

func TestMonitor_ReportsRefreshFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	staleSession := &domain.Session{ExpiresAt: now.Add(time.Minute).Unix()}

	providerMock := mock.NewProvider(ctrl)
	providerMock.EXPECT().Session(gomock.Any()).Return(staleSession, nil).AnyTimes()
	providerMock.EXPECT().Refresh(gomock.Any()).Return(nil, domain.ErrInvalidGrant).AnyTimes()

	failed := make(chan error, 1)
	monitor := newTestMonitor(providerMock, clock.Fixed(now), lifecycle.MonitorCallbacks{
		OnError: func(err error) {
			select {
			case failed <- err:
			default:
			}
		},
	})

	monitor.Start(t.Context(), monitorTestInterval)
	defer monitor.Stop()

	select {
	case err := <-failed:
		assert.ErrorIs(t, err, domain.ErrInvalidGrant)
	case <-time.After(monitorTestTimeout):
		t.Fatal("expected the error callback to fire")
	}
}

func TestMonitor_RestartAndStopAreIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	providerMock := mock.NewProvider(ctrl)
	providerMock.EXPECT().Session(gomock.Any()).
		Return(&domain.Session{ExpiresAt: now.Add(time.Hour).Unix()}, nil).
		AnyTimes()

	monitor := newTestMonitor(providerMock, clock.Fixed(now), lifecycle.MonitorCallbacks{})

	monitor.Stop() // not started yet

	monitor.Start(t.Context(), monitorTestInterval)
	monitor.Start(t.Context(), monitorTestInterval) // replaces the first run
	time.Sleep(3 * monitorTestInterval)

	monitor.Stop()
	monitor.Stop()
}

func TestMonitor_StopDoesNotCancelInFlightRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	staleSession := &domain.Session{ExpiresAt: now.Add(time.Minute).Unix()}
	freshSession := &domain.Session{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour).Unix()}

	refreshStarted := make(chan struct{})
	releaseRefresh := make(chan struct{})
	refreshCtxErr := make(chan error, 1)

	var refreshCalls atomic.Int32
	providerMock := mock.NewProvider(ctrl)
	providerMock.EXPECT().Session(gomock.Any()).Return(staleSession, nil).AnyTimes()
	providerMock.EXPECT().Refresh(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.Session, error) {
			if refreshCalls.Add(1) == 1 {
				close(refreshStarted)
				<-releaseRefresh
				refreshCtxErr <- ctx.Err()
			}
			return freshSession, nil
		}).
		AnyTimes()

	refreshed := make(chan *domain.Session, 1)
	monitor := newTestMonitor(providerMock, clock.Fixed(now), lifecycle.MonitorCallbacks{
		OnSessionRefreshed: func(session *domain.Session) {
			select {
			case refreshed <- session:
			default:
			}
		},
	})

	monitor.Start(t.Context(), monitorTestInterval)

	select {
	case <-refreshStarted:
	case <-time.After(monitorTestTimeout):
		t.Fatal("expected a refresh to start")
	}

	stopped := make(chan struct{})
	go func() {
		monitor.Stop()
		close(stopped)
	}()
	time.Sleep(2 * monitorTestInterval)
	close(releaseRefresh)

	select {
	case <-stopped:
	case <-time.After(monitorTestTimeout):
		t.Fatal("expected stop to return once the tick finished")
	}

	assert.NoError(t, <-refreshCtxErr)
	select {
	case session := <-refreshed:
		assert.Equal(t, freshSession, session)
	default:
		t.Fatal("expected the refresh callback to fire")
	}
}

func TestMonitor_DoubleStartKeepsSingleTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	var ticks atomic.Int32
	providerMock := mock.NewProvider(ctrl)
	providerMock.EXPECT().Session(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.Session, error) {
			ticks.Add(1)
			return &domain.Session{ExpiresAt: now.Add(time.Hour).Unix()}, nil
		}).
		AnyTimes()

	monitor := newTestMonitor(providerMock, clock.Fixed(now), lifecycle.MonitorCallbacks{})

	started := time.Now()
	monitor.Start(t.Context(), monitorTestInterval)
	monitor.Start(t.Context(), monitorTestInterval) // replaces the first run
	time.Sleep(10 * monitorTestInterval)
	monitor.Stop()

	// A single timer cannot fire more often than once per interval.
	maxTicks := int32(time.Since(started)/monitorTestInterval) + 1
	got := ticks.Load()
	assert.Positive(t, got)
	assert.LessOrEqual(t, got, maxTicks)
}

func TestMonitor_SuppressesTicksWhileOneIsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	validationStarted := make(chan struct{})
	releaseValidation := make(chan struct{})

	var validations atomic.Int32
	providerMock := mock.NewProvider(ctrl)
	providerMock.EXPECT().Session(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.Session, error) {
			if validations.Add(1) == 1 {
				close(validationStarted)
				<-releaseValidation
			}
			return &domain.Session{ExpiresAt: now.Add(time.Hour).Unix()}, nil
		}).
		AnyTimes()

	monitor := newTestMonitor(providerMock, clock.Fixed(now), lifecycle.MonitorCallbacks{})

	monitor.Start(t.Context(), monitorTestInterval)
	select {
	case <-validationStarted:
	case <-time.After(monitorTestTimeout):
		t.Fatal("expected a tick to start")
	}

	// Several intervals elapse while the first tick is still busy.
	time.Sleep(4 * monitorTestInterval)
	assert.Equal(t, int32(1), validations.Load())

	close(releaseValidation)
	monitor.Stop()
}

func newTestMonitor(provider lifecycle.Provider, clk clock.Clock, callbacks lifecycle.MonitorCallbacks) *lifecycle.Monitor {
	return lifecycle.NewMonitor(
		lifecycle.NewValidator(provider, clk),
		lifecycle.NewRefresher(provider, lifecycle.RetryPolicy{MaxAttempts: 1}, log.NewStub()),
		callbacks,
		log.NewStub(),
	)
}
