package domain

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry extracts the exp claim of the provider access token.
// The token is decoded without signature verification: the caller only needs
// the expiry of its own locally cached credential, not a trust decision.
func AccessTokenExpiry(accessToken string) (int64, error) {
	if accessToken == "" {
		return 0, errors.New("access token is empty")
	}

	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return 0, fmt.Errorf("%w: no exp claim", ErrMalformedToken)
	}

	return expiresAt.Unix(), nil
}
