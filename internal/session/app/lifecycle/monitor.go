package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/log"
)

const DefaultMonitorInterval = time.Minute

// MonitorCallbacks are invoked from the monitor's background goroutine.
// Any of them may be nil.
type MonitorCallbacks struct {
	OnSessionExpired   func()
	OnSessionRefreshed func(session *domain.Session)
	OnError            func(err error)
}

// Monitor periodically re-validates the session and refreshes it
// proactively. Start and Stop are idempotent; a tick that is still
// running when the next one fires suppresses the new tick.
type Monitor struct {
	validator Validator
	refresher Refresher
	callbacks MonitorCallbacks
	logger    log.Logger

	mutex    sync.Mutex
	stopFunc context.CancelFunc
	done     chan struct{}
	inFlight atomic.Bool
}

func NewMonitor(validator Validator, refresher Refresher, callbacks MonitorCallbacks, logger log.Logger) *Monitor {
	return &Monitor{
		validator: validator,
		refresher: refresher,
		callbacks: callbacks,
		logger:    logger,
	}
}

func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stopLocked()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.stopFunc = cancel
	m.done = done

	go func() {
		defer close(done)
		// Ticks run on a context Stop cannot cancel: stopping only
		// prevents future ticks, a provider call already in flight
		// finishes on its own.
		tickCtx := context.WithoutCancel(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				m.tick(tickCtx)
			}
		}
	}()
}

// Stop cancels future ticks and waits for a tick already in flight to
// finish. It must not be called from within a monitor callback.
func (m *Monitor) Stop() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stopLocked()
}

func (m *Monitor) stopLocked() {
	if m.stopFunc == nil {
		return
	}
	m.stopFunc()
	<-m.done
	m.stopFunc = nil
	m.done = nil
}

func (m *Monitor) tick(ctx context.Context) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer m.inFlight.Store(false)

	validation := m.validator.Validate(ctx)
	switch {
	case validation.IsExpired:
		m.logger.Info(ctx, "session expired")
		if m.callbacks.OnSessionExpired != nil {
			m.callbacks.OnSessionExpired()
		}
	case validation.NeedsRefresh:
		refresh := m.refresher.Refresh(ctx)
		if refresh.Success {
			if m.callbacks.OnSessionRefreshed != nil {
				m.callbacks.OnSessionRefreshed(refresh.Session)
			}
			return
		}
		m.logger.WithError(refresh.Err).Warn(ctx, "proactive session refresh failed")
		if m.callbacks.OnError != nil {
			m.callbacks.OnError(refresh.Err)
		}
	}
}
