package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/placemarks-app/placemarks/internal/feed/app/external"
	"github.com/placemarks-app/placemarks/internal/feed/app/service"
	"github.com/placemarks-app/placemarks/internal/feed/domain"
	domainmock "github.com/placemarks-app/placemarks/internal/feed/domain/mock"
)

func TestFeedService_HandlePlaceSaved_UpsertsProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evt := external.EventPlaceSaved{
		EventID:    uuid.New(),
		PlaceID:    uuid.New(),
		ListID:     uuid.New(),
		OwnerID:    uuid.New(),
		PlaceName:  "Third Wave",
		Category:   "cafe",
		ListPublic: true,
		SavedAt:    time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}

	repoMock := domainmock.NewFeedRepo(ctrl)
	repoMock.EXPECT().Upsert(gomock.Any(), domain.FeedEntry{
		PlaceID:   evt.PlaceID,
		ListID:    evt.ListID,
		OwnerID:   evt.OwnerID,
		PlaceName: evt.PlaceName,
		Category:  evt.Category,
		SavedAt:   evt.SavedAt,
	}).Return(nil)

	err := service.NewFeedService(repoMock).HandlePlaceSaved(t.Context(), evt)
	assert.NoError(t, err)
}

func TestFeedService_HandlePlaceSaved_SkipsPrivateLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evt := external.EventPlaceSaved{
		EventID:    uuid.New(),
		PlaceID:    uuid.New(),
		ListID:     uuid.New(),
		OwnerID:    uuid.New(),
		PlaceName:  "Third Wave",
		Category:   "cafe",
		ListPublic: false,
		SavedAt:    time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}

	repoMock := domainmock.NewFeedRepo(ctrl)

	err := service.NewFeedService(repoMock).HandlePlaceSaved(t.Context(), evt)
	assert.NoError(t, err)
}

func TestFeedService_HandlePlaceRemoved_DeletesProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeID := uuid.New()
	repoMock := domainmock.NewFeedRepo(ctrl)
	repoMock.EXPECT().Delete(gomock.Any(), placeID).Return(nil)

	err := service.NewFeedService(repoMock).HandlePlaceRemoved(t.Context(), external.EventPlaceRemoved{
		EventID: uuid.New(),
		PlaceID: placeID,
		ListID:  uuid.New(),
	})
	assert.NoError(t, err)
}

func TestFeedService_PruneOldEntries_Deletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	repoMock := domainmock.NewFeedRepo(ctrl)
	repoMock.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).Return(7, nil)

	deleted, err := service.NewFeedService(repoMock).PruneOldEntries(t.Context(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, 7, deleted)
}

func TestFeedService_PruneOldEntries_WrapsRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoErr := errors.New("connection lost")
	repoMock := domainmock.NewFeedRepo(ctrl)
	repoMock.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(0, repoErr)

	_, err := service.NewFeedService(repoMock).PruneOldEntries(t.Context(), time.Now())
	assert.ErrorIs(t, err, repoErr)
}

func TestFeedService_GetFeed_Returns(t *testing.T) {
	viewerID := uuid.New()
	entries := []domain.FeedEntry{{PlaceID: uuid.New(), PlaceName: "Third Wave"}}

	tests := []struct {
		name          string
		limit         int
		expectedLimit int
		feedRepo      func(ctrl *gomock.Controller, expectedLimit int) domain.FeedRepo
		expect        func(t *testing.T, result []domain.FeedEntry, err error)
	}{
		{
			name:          "explicit_limit_passed_through",
			limit:         10,
			expectedLimit: 10,
			feedRepo: func(ctrl *gomock.Controller, expectedLimit int) domain.FeedRepo {
				repoMock := domainmock.NewFeedRepo(ctrl)
				repoMock.EXPECT().FindRecent(gomock.Any(), viewerID, expectedLimit).Return(entries, nil)
				return repoMock
			},
			expect: func(t *testing.T, result []domain.FeedEntry, err error) {
				require.NoError(t, err)
				assert.Equal(t, entries, result)
			},
		},
		{
			name:          "non_positive_limit_defaulted",
			limit:         0,
			expectedLimit: 50,
			feedRepo: func(ctrl *gomock.Controller, expectedLimit int) domain.FeedRepo {
				repoMock := domainmock.NewFeedRepo(ctrl)
				repoMock.EXPECT().FindRecent(gomock.Any(), viewerID, expectedLimit).Return(entries, nil)
				return repoMock
			},
			expect: func(t *testing.T, _ []domain.FeedEntry, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:          "oversized_limit_clamped",
			limit:         500,
			expectedLimit: 50,
			feedRepo: func(ctrl *gomock.Controller, expectedLimit int) domain.FeedRepo {
				repoMock := domainmock.NewFeedRepo(ctrl)
				repoMock.EXPECT().FindRecent(gomock.Any(), viewerID, expectedLimit).Return(entries, nil)
				return repoMock
			},
			expect: func(t *testing.T, _ []domain.FeedEntry, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:          "error_when_repo_fails",
			limit:         10,
			expectedLimit: 10,
			feedRepo: func(ctrl *gomock.Controller, expectedLimit int) domain.FeedRepo {
				repoMock := domainmock.NewFeedRepo(ctrl)
				repoMock.EXPECT().FindRecent(gomock.Any(), viewerID, expectedLimit).
					Return(nil, errors.New("unexpected"))
				return repoMock
			},
			expect: func(t *testing.T, _ []domain.FeedEntry, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := service.NewFeedService(tc.feedRepo(ctrl, tc.expectedLimit))
			result, err := svc.GetFeed(t.Context(), viewerID, tc.limit)
			tc.expect(t, result, err)
		})
	}
}
