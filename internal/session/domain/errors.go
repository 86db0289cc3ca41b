package domain

import (
	"context"
	"errors"
	"net"
	"strings"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrInvalidGrant         = errors.New("invalid grant")
	ErrMalformedToken       = errors.New("malformed jwt token")
	ErrUnauthorized         = errors.New("unauthorized")
)

type ErrorKind int

const (
	// ErrorKindUnknown failures are conservatively retried exactly once.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindNetwork failures are transient and retryable without side effects.
	ErrorKindNetwork
	// ErrorKindSessionToken failures are terminal and force local cleanup with sign-out.
	ErrorKindSessionToken
	// ErrorKindAuth failures are terminal and never retried.
	ErrorKindAuth
)

func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorKindUnknown
	}

	switch {
	case errors.Is(err, ErrRefreshTokenNotFound),
		errors.Is(err, ErrInvalidGrant),
		errors.Is(err, ErrMalformedToken):
		return ErrorKindSessionToken
	case errors.Is(err, ErrUnauthorized):
		return ErrorKindAuth
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorKindNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrorKindNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "refresh token not found", "refresh_token_not_found", "invalid grant", "invalid_grant", "malformed jwt", "invalid jwt"):
		return ErrorKindSessionToken
	case containsAny(msg, "invalid credentials", "invalid login", "unauthorized", "forbidden"):
		return ErrorKindAuth
	case containsAny(msg, "timeout", "timed out", "connection refused", "connection reset", "no such host", "network"):
		return ErrorKindNetwork
	}

	return ErrorKindUnknown
}

func IsTerminalError(err error) bool {
	kind := ClassifyError(err)
	return kind == ErrorKindSessionToken || kind == ErrorKindAuth
}

func containsAny(msg string, substrings ...string) bool {
	for _, substring := range substrings {
		if strings.Contains(msg, substring) {
			return true
		}
	}
	return false
}
