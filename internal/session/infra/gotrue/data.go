package gotrue

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/session/domain"
)

type sessionData struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	ExpiresAt    int64     `json:"expires_at"`
	User         *userData `json:"user"`
}

func (d sessionData) toDomain(now time.Time) *domain.Session {
	expiresAt := d.ExpiresAt
	if expiresAt == 0 && d.ExpiresIn > 0 {
		expiresAt = now.Unix() + d.ExpiresIn
	}

	session := &domain.Session{
		AccessToken:  d.AccessToken,
		RefreshToken: d.RefreshToken,
		TokenType:    d.TokenType,
		ExpiresAt:    expiresAt,
	}
	if d.User != nil {
		session.User = d.User.toDomain()
	}
	return session
}

type userData struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (d userData) toDomain() *domain.User {
	return &domain.User{ID: d.ID, Email: d.Email}
}

// errorData covers both GoTrue error shapes: the OAuth-style
// {"error", "error_description"} of the token endpoint and the
// {"code", "msg"} of the remaining endpoints.
type errorData struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Code             int    `json:"code"`
	Msg              string `json:"msg"`
}

func (d errorData) toDomainError(statusCode int) error {
	msg := strings.ToLower(d.message())
	switch {
	case d.Error == "invalid_grant",
		strings.Contains(msg, "invalid grant"):
		return fmt.Errorf("%w: %s", domain.ErrInvalidGrant, d.message())
	case strings.Contains(msg, "refresh token not found"),
		strings.Contains(msg, "refresh_token_not_found"):
		return fmt.Errorf("%w: %s", domain.ErrRefreshTokenNotFound, d.message())
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, d.message())
	default:
		return fmt.Errorf("auth request failed with status %d: %s", statusCode, d.message())
	}
}

func (d errorData) message() string {
	if d.ErrorDescription != "" {
		return d.ErrorDescription
	}
	if d.Msg != "" {
		return d.Msg
	}
	if d.Error != "" {
		return d.Error
	}
	return "unknown error"
}
