package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/feed/app/external"
	"github.com/placemarks-app/placemarks/internal/feed/domain"
)

const defaultFeedLimit = 50

type FeedService struct {
	feedRepo domain.FeedRepo
}

func NewFeedService(feedRepo domain.FeedRepo) *FeedService {
	return &FeedService{feedRepo: feedRepo}
}

func (s *FeedService) HandlePlaceSaved(ctx context.Context, evt external.EventPlaceSaved) error {
	// Saves to private lists never enter the shared feed.
	if !evt.ListPublic {
		return nil
	}

	err := s.feedRepo.Upsert(ctx, domain.FeedEntry{
		PlaceID:   evt.PlaceID,
		ListID:    evt.ListID,
		OwnerID:   evt.OwnerID,
		PlaceName: evt.PlaceName,
		Category:  evt.Category,
		SavedAt:   evt.SavedAt,
	})
	if err != nil {
		return fmt.Errorf("upsert feed entry: %w", err)
	}
	return nil
}

func (s *FeedService) HandlePlaceRemoved(ctx context.Context, evt external.EventPlaceRemoved) error {
	if err := s.feedRepo.Delete(ctx, evt.PlaceID); err != nil {
		return fmt.Errorf("delete feed entry: %w", err)
	}
	return nil
}

// PruneOldEntries drops feed entries saved before cutoff. The feed only
// serves a recent window, so aged-out entries are dead weight.
func (s *FeedService) PruneOldEntries(ctx context.Context, cutoff time.Time) (int, error) {
	deleted, err := s.feedRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old feed entries: %w", err)
	}
	return deleted, nil
}

// GetFeed returns recent saves of other users, newest first.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]domain.FeedEntry, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}

	entries, err := s.feedRepo.FindRecent(ctx, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("find feed entries: %w", err)
	}
	return entries, nil
}
