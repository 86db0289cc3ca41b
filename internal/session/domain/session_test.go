package domain_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placemarks-app/placemarks/internal/session/domain"
)

func TestSession_Expiry_Returns(t *testing.T) {
	explicitExpiry := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	claimExpiry := time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session domain.Session
		expect  func(t *testing.T, expiry time.Time)
	}{
		{
			name: "explicit_expiry_when_provider_sent_expires_at",
			session: domain.Session{
				AccessToken: signedToken(t, claimExpiry),
				ExpiresAt:   explicitExpiry.Unix(),
			},
			expect: func(t *testing.T, expiry time.Time) {
				assert.Equal(t, explicitExpiry.Unix(), expiry.Unix())
			},
		},
		{
			name: "token_exp_claim_when_expires_at_missing",
			session: domain.Session{
				AccessToken: signedToken(t, claimExpiry),
			},
			expect: func(t *testing.T, expiry time.Time) {
				assert.Equal(t, claimExpiry.Unix(), expiry.Unix())
			},
		},
		{
			name:    "zero_time_when_no_expiry_resolvable",
			session: domain.Session{AccessToken: "not-a-jwt"},
			expect: func(t *testing.T, expiry time.Time) {
				assert.True(t, expiry.IsZero())
			},
		},
		{
			name:    "zero_time_when_session_is_empty",
			session: domain.Session{},
			expect: func(t *testing.T, expiry time.Time) {
				assert.True(t, expiry.IsZero())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.expect(t, tc.session.Expiry())
		})
	}
}

func TestAccessTokenExpiry_Returns(t *testing.T) {
	tests := []struct {
		name   string
		token  func(t *testing.T) string
		expect func(t *testing.T, expiresAt int64, err error)
	}{
		{
			name: "exp_claim_unix_seconds",
			token: func(t *testing.T) string {
				return signedToken(t, time.Unix(1787000000, 0))
			},
			expect: func(t *testing.T, expiresAt int64, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1787000000), expiresAt)
			},
		},
		{
			name: "error_when_token_is_empty",
			token: func(*testing.T) string {
				return ""
			},
			expect: func(t *testing.T, _ int64, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "malformed_error_when_token_is_garbage",
			token: func(*testing.T) string {
				return "garbage.token.value"
			},
			expect: func(t *testing.T, _ int64, err error) {
				assert.ErrorIs(t, err, domain.ErrMalformedToken)
			},
		},
		{
			name: "malformed_error_when_exp_claim_is_missing",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"}).
					SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return token
			},
			expect: func(t *testing.T, _ int64, err error) {
				assert.ErrorIs(t, err, domain.ErrMalformedToken)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			expiresAt, err := domain.AccessTokenExpiry(tc.token(t))
			tc.expect(t, expiresAt, err)
		})
	}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": expiresAt.Unix()}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}
