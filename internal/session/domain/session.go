package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the credential bundle issued by the auth provider. The application
// only consumes the expiry timestamp and the associated user, the tokens are
// opaque and passed back to the provider as is.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresAt    int64  `json:"expires_at"`
	User         *User  `json:"user,omitempty"`
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Expiry returns the session expiry, falling back to the access token exp
// claim when the provider response carried no explicit expires_at value.
// A session without any resolvable expiry returns the zero time.
func (s *Session) Expiry() time.Time {
	if s.ExpiresAt > 0 {
		return time.Unix(s.ExpiresAt, 0)
	}

	expiresAt, err := AccessTokenExpiry(s.AccessToken)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(expiresAt, 0)
}
