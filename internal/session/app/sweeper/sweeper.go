package sweeper

import (
	"context"
	"fmt"

	"github.com/placemarks-app/placemarks/pkg/log"
)

// ExpiredDeleter removes entries whose expiry has passed and reports
// how many were removed.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context) (int, error)
}

type Sweeper struct {
	store  ExpiredDeleter
	logger log.Logger
}

func New(store ExpiredDeleter, logger log.Logger) *Sweeper {
	return &Sweeper{store: store, logger: logger}
}

func (s *Sweeper) Sweep(ctx context.Context) error {
	deleted, err := s.store.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("sweep expired sessions: %w", err)
	}
	if deleted > 0 {
		s.logger.WithField("deleted", deleted).Info(ctx, "expired session entries swept")
	}
	return nil
}
