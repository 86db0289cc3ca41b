package gotrue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle"
	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/clock"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

const (
	DestinationName = "gotrue"

	sessionKeySuffix   = "auth-token"
	fallbackSessionTTL = time.Hour
)

type Config struct {
	BaseURL   string
	APIKey    string
	KeyPrefix string
}

// Client talks to a GoTrue-compatible auth backend and caches the
// current session in the local store under KeyPrefix + "auth-token".
type Client struct {
	httpClient pkghttp.Client
	store      domain.Store
	clock      clock.Clock
	keyPrefix  string
}

func NewClient(httpClient pkghttp.Client, store domain.Store, clk clock.Clock, config Config) *Client {
	return &Client{
		httpClient: httpClient.With(
			pkghttp.WithClientDestination(DestinationName, config.BaseURL),
			pkghttp.WithClientHeader("apikey", config.APIKey),
		),
		store:     store,
		clock:     clk,
		keyPrefix: config.KeyPrefix,
	}
}

func (c *Client) Session(ctx context.Context) (*domain.Session, error) {
	data, err := c.store.Get(ctx, c.sessionKey())
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cached session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode cached session: %w", err)
	}
	return &session, nil
}

func (c *Client) User(ctx context.Context) (*domain.User, error) {
	session, err := c.Session(ctx)
	if err != nil {
		return nil, err
	}

	var (
		user   userData
		apiErr errorData
	)
	resp, err := c.httpClient.NewRequest(ctx).
		SetAuthToken(session.AccessToken).
		SetResult(&user).
		SetError(&apiErr).
		Get("/user")
	if err != nil {
		return nil, fmt.Errorf("get user identity: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr.toDomainError(resp.StatusCode())
	}

	return user.toDomain(), nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	return c.tokenRequest(ctx, "password", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *Client) Refresh(ctx context.Context) (*domain.Session, error) {
	session, err := c.Session(ctx)
	if err != nil {
		return nil, err
	}
	if session.RefreshToken == "" {
		return nil, domain.ErrRefreshTokenNotFound
	}

	return c.tokenRequest(ctx, "refresh_token", map[string]string{
		"refresh_token": session.RefreshToken,
	})
}

func (c *Client) SignOut(ctx context.Context) error {
	session, err := c.Session(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	resp, err := c.httpClient.NewRequest(ctx).
		SetAuthToken(session.AccessToken).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	// A rejected token means the server-side session is already gone.
	if resp.IsError() && resp.StatusCode() != http.StatusUnauthorized {
		return fmt.Errorf("sign out: unexpected status %d", resp.StatusCode())
	}

	return c.store.Delete(ctx, c.sessionKey())
}

func (c *Client) tokenRequest(ctx context.Context, grantType string, body map[string]string) (*domain.Session, error) {
	var (
		session sessionData
		apiErr  errorData
	)
	resp, err := c.httpClient.NewRequest(ctx).
		SetQueryParam("grant_type", grantType).
		SetBody(body).
		SetResult(&session).
		SetError(&apiErr).
		Post("/token")
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr.toDomainError(resp.StatusCode())
	}

	result := session.toDomain(c.clock.Now())
	if err := c.persistSession(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) persistSession(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	expiresAt := session.Expiry()
	if expiresAt.IsZero() {
		expiresAt = c.clock.Now().Add(fallbackSessionTTL)
	}
	if err := c.store.Set(ctx, c.sessionKey(), data, expiresAt); err != nil {
		return fmt.Errorf("cache session: %w", err)
	}
	return nil
}

func (c *Client) sessionKey() string {
	return c.keyPrefix + sessionKeySuffix
}

var _ lifecycle.Provider = &Client{}
