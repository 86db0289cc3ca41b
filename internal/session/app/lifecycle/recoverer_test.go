package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle"
	lifecyclemock "github.com/placemarks-app/placemarks/internal/session/app/lifecycle/mock"
	"github.com/placemarks-app/placemarks/internal/session/domain"
	domainmock "github.com/placemarks-app/placemarks/internal/session/domain/mock"
	"github.com/placemarks-app/placemarks/pkg/clock"
	"github.com/placemarks-app/placemarks/pkg/log"
)

const testKeyPrefix = "placemarks/"

func TestRecoverer_Recover_Returns(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	freshSession := &domain.Session{AccessToken: "fresh", ExpiresAt: now.Add(time.Hour).Unix()}

	tests := []struct {
		name     string
		provider func(ctrl *gomock.Controller) lifecycle.Provider
		store    func(ctrl *gomock.Controller) domain.Store
		expect   func(t *testing.T, result lifecycle.ValidationResult)
	}{
		{
			name: "valid_session_returned_without_refresh",
			provider: func(ctrl *gomock.Controller) lifecycle.Provider {
				providerMock := lifecyclemock.NewProvider(ctrl)
				providerMock.EXPECT().Session(gomock.Any()).Return(freshSession, nil)
				return providerMock
			},
			store: func(ctrl *gomock.Controller) domain.Store {
				return domainmock.NewStore(ctrl)
			},
			expect: func(t *testing.T, result lifecycle.ValidationResult) {
				assert.True(t, result.IsValid)
				assert.Equal(t, freshSession, result.Session)
			},
		},
		{
			name: "refresh_restores_a_missing_session",
			provider: func(ctrl *gomock.Controller) lifecycle.Provider {
				providerMock := lifecyclemock.NewProvider(ctrl)
				providerMock.EXPECT().Session(gomock.Any()).Return(nil, domain.ErrSessionNotFound)
				providerMock.EXPECT().Refresh(gomock.Any()).Return(freshSession, nil)
				return providerMock
			},
			store: func(ctrl *gomock.Controller) domain.Store {
				return domainmock.NewStore(ctrl)
			},
			expect: func(t *testing.T, result lifecycle.ValidationResult) {
				assert.True(t, result.IsValid)
				assert.Equal(t, freshSession, result.Session)
			},
		},
		{
			name: "terminal_refresh_failure_clears_stale_data_and_signs_out",
			provider: func(ctrl *gomock.Controller) lifecycle.Provider {
				providerMock := lifecyclemock.NewProvider(ctrl)
				providerMock.EXPECT().Session(gomock.Any()).Return(nil, domain.ErrSessionNotFound)
				providerMock.EXPECT().Refresh(gomock.Any()).Return(nil, domain.ErrRefreshTokenNotFound)
				providerMock.EXPECT().SignOut(gomock.Any()).Return(nil)
				return providerMock
			},
			store: func(ctrl *gomock.Controller) domain.Store {
				storeMock := domainmock.NewStore(ctrl)
				storeMock.EXPECT().DeleteByPrefix(gomock.Any(), testKeyPrefix).Return(nil)
				return storeMock
			},
			expect: func(t *testing.T, result lifecycle.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.ErrorIs(t, result.Err, domain.ErrRefreshTokenNotFound)
			},
		},
		{
			name: "sign_out_failure_does_not_mask_the_refresh_error",
			provider: func(ctrl *gomock.Controller) lifecycle.Provider {
				providerMock := lifecyclemock.NewProvider(ctrl)
				providerMock.EXPECT().Session(gomock.Any()).Return(nil, domain.ErrSessionNotFound)
				providerMock.EXPECT().Refresh(gomock.Any()).Return(nil, domain.ErrInvalidGrant)
				providerMock.EXPECT().SignOut(gomock.Any()).Return(errors.New("provider down"))
				return providerMock
			},
			store: func(ctrl *gomock.Controller) domain.Store {
				storeMock := domainmock.NewStore(ctrl)
				storeMock.EXPECT().DeleteByPrefix(gomock.Any(), testKeyPrefix).Return(nil)
				return storeMock
			},
			expect: func(t *testing.T, result lifecycle.ValidationResult) {
				assert.ErrorIs(t, result.Err, domain.ErrInvalidGrant)
			},
		},
		{
			name: "store_cleanup_failure_skips_sign_out",
			provider: func(ctrl *gomock.Controller) lifecycle.Provider {
				providerMock := lifecyclemock.NewProvider(ctrl)
				providerMock.EXPECT().Session(gomock.Any()).Return(nil, domain.ErrSessionNotFound)
				providerMock.EXPECT().Refresh(gomock.Any()).Return(nil, domain.ErrInvalidGrant)
				return providerMock
			},
			store: func(ctrl *gomock.Controller) domain.Store {
				storeMock := domainmock.NewStore(ctrl)
				storeMock.EXPECT().DeleteByPrefix(gomock.Any(), testKeyPrefix).Return(errors.New("disk failure"))
				return storeMock
			},
			expect: func(t *testing.T, result lifecycle.ValidationResult) {
				assert.ErrorIs(t, result.Err, domain.ErrInvalidGrant)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := tc.provider(ctrl)
			clk := clock.Fixed(now)
			recoverer := lifecycle.NewRecoverer(
				lifecycle.NewValidator(provider, clk),
				lifecycle.NewRefresher(provider, lifecycle.RetryPolicy{MaxAttempts: 1}, log.NewStub()),
				provider,
				tc.store(ctrl),
				testKeyPrefix,
				log.NewStub(),
			)
			tc.expect(t, recoverer.Recover(t.Context()))
		})
	}
}
