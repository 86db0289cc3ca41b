package gotrue_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/internal/session/infra/cache"
	"github.com/placemarks-app/placemarks/internal/session/infra/gotrue"
	"github.com/placemarks-app/placemarks/pkg/clock"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

func TestClient_SignInWithPassword_PersistsSession(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "test-api-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "someone@example.com", body["email"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "access",
			"refresh_token": "refresh",
			"token_type":    "bearer",
			"expires_in":    3600,
			"user":          map[string]any{"id": userID, "email": "someone@example.com"},
		})
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL, now)

	session, err := client.SignInWithPassword(t.Context(), "someone@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, now.Add(time.Hour).Unix(), session.ExpiresAt)
	require.NotNil(t, session.User)
	assert.Equal(t, userID, session.User.ID)

	cached, err := store.Get(t.Context(), "placemarks/auth-token")
	require.NoError(t, err)
	var stored domain.Session
	require.NoError(t, json.Unmarshal(cached, &stored))
	assert.Equal(t, "refresh", stored.RefreshToken)

	fromClient, err := client.Session(t.Context())
	require.NoError(t, err)
	assert.Equal(t, session, fromClient)
}

func TestClient_Session_ReturnsNotFoundWhenCacheIsEmpty(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	client, _ := newTestClient(t, "http://localhost:0", now)

	_, err := client.Session(t.Context())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestClient_Refresh_Returns(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		cachedSession *domain.Session
		handler       http.HandlerFunc
		expect        func(t *testing.T, session *domain.Session, err error)
	}{
		{
			name: "new_session_on_success",
			cachedSession: &domain.Session{
				AccessToken:  "stale",
				RefreshToken: "refresh",
				ExpiresAt:    now.Add(time.Minute).Unix(),
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]any{
					"access_token":  "renewed",
					"refresh_token": "rotated",
					"expires_at":    now.Add(time.Hour).Unix(),
				})
			},
			expect: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, "renewed", session.AccessToken)
				assert.Equal(t, "rotated", session.RefreshToken)
			},
		},
		{
			name:          "session_not_found_without_cached_session",
			cachedSession: nil,
			expect: func(t *testing.T, _ *domain.Session, err error) {
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			},
		},
		{
			name: "refresh_token_not_found_when_cached_session_has_none",
			cachedSession: &domain.Session{
				AccessToken: "stale",
				ExpiresAt:   now.Add(time.Minute).Unix(),
			},
			expect: func(t *testing.T, _ *domain.Session, err error) {
				assert.ErrorIs(t, err, domain.ErrRefreshTokenNotFound)
			},
		},
		{
			name: "invalid_grant_mapped_from_oauth_error",
			cachedSession: &domain.Session{
				AccessToken:  "stale",
				RefreshToken: "revoked",
				ExpiresAt:    now.Add(time.Minute).Unix(),
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusBadRequest, map[string]any{
					"error":             "invalid_grant",
					"error_description": "Invalid Refresh Token",
				})
			},
			expect: func(t *testing.T, _ *domain.Session, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidGrant)
			},
		},
		{
			name: "refresh_token_not_found_mapped_from_error_message",
			cachedSession: &domain.Session{
				AccessToken:  "stale",
				RefreshToken: "unknown",
				ExpiresAt:    now.Add(time.Minute).Unix(),
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusBadRequest, map[string]any{
					"code": http.StatusBadRequest,
					"msg":  "refresh token not found",
				})
			},
			expect: func(t *testing.T, _ *domain.Session, err error) {
				assert.ErrorIs(t, err, domain.ErrRefreshTokenNotFound)
			},
		},
		{
			name: "unauthorized_mapped_from_status_code",
			cachedSession: &domain.Session{
				AccessToken:  "stale",
				RefreshToken: "refresh",
				ExpiresAt:    now.Add(time.Minute).Unix(),
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusUnauthorized, map[string]any{
					"code": http.StatusUnauthorized,
					"msg":  "bad api key",
				})
			},
			expect: func(t *testing.T, _ *domain.Session, err error) {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := tc.handler
			if handler == nil {
				handler = func(w http.ResponseWriter, _ *http.Request) {
					t.Error("unexpected http call")
					w.WriteHeader(http.StatusInternalServerError)
				}
			}
			server := httptest.NewServer(handler)
			defer server.Close()

			client, store := newTestClient(t, server.URL, now)
			if tc.cachedSession != nil {
				cacheSession(t, store, tc.cachedSession)
			}

			session, err := client.Refresh(t.Context())
			tc.expect(t, session, err)
		})
	}
}

func TestClient_SignOut_DeletesCachedSession(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status int
	}{
		{name: "server_accepts_logout", status: http.StatusNoContent},
		{name: "server_already_rejected_the_token", status: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/logout", r.URL.Path)
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client, store := newTestClient(t, server.URL, now)
			cacheSession(t, store, &domain.Session{
				AccessToken: "access",
				ExpiresAt:   now.Add(time.Hour).Unix(),
			})

			require.NoError(t, client.SignOut(t.Context()))

			_, err := store.Get(t.Context(), "placemarks/auth-token")
			assert.ErrorIs(t, err, domain.ErrKeyNotFound)
		})
	}
}

func TestClient_SignOut_NoopWithoutSession(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	client, _ := newTestClient(t, "http://localhost:0", now)

	assert.NoError(t, client.SignOut(t.Context()))
}

func newTestClient(t *testing.T, baseURL string, now time.Time) (*gotrue.Client, domain.Store) {
	t.Helper()
	store := cache.NewMemoryStore(clock.Fixed(now))
	client := gotrue.NewClient(pkghttp.NewClient(), store, clock.Fixed(now), gotrue.Config{
		BaseURL:   baseURL,
		APIKey:    "test-api-key",
		KeyPrefix: "placemarks/",
	})
	return client, store
}

func cacheSession(t *testing.T, store domain.Store, session *domain.Session) {
	t.Helper()
	data, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, store.Set(t.Context(), "placemarks/auth-token", data, time.Time{}))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}
