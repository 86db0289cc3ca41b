//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "FeedRepo=FeedRepo"
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FeedEntry is a denormalized projection of a place saved to a public
// list, keyed by the saved place so redelivered events overwrite
// instead of duplicating.
type FeedEntry struct {
	PlaceID   uuid.UUID
	ListID    uuid.UUID
	OwnerID   uuid.UUID
	PlaceName string
	Category  string
	SavedAt   time.Time
}

type FeedRepo interface {
	Upsert(ctx context.Context, entry FeedEntry) error
	Delete(ctx context.Context, placeID uuid.UUID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	FindRecent(ctx context.Context, excludeOwnerID uuid.UUID, limit int) ([]FeedEntry, error)
}
