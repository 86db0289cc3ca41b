package http

import (
	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/session/domain"
)

type sessionOut struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	TokenType    string   `json:"tokenType"`
	ExpiresAt    int64    `json:"expiresAt"`
	User         *userOut `json:"user,omitempty"`
}

type userOut struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func toSessionOut(session *domain.Session) sessionOut {
	out := sessionOut{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    session.TokenType,
		ExpiresAt:    session.ExpiresAt,
	}
	if session.User != nil {
		out.User = &userOut{ID: session.User.ID, Email: session.User.Email}
	}
	return out
}
