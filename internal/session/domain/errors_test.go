package domain_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placemarks-app/placemarks/internal/session/domain"
)

func TestClassifyError_Returns(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ErrorKind
	}{
		{
			name: "unknown_when_nil",
			err:  nil,
			want: domain.ErrorKindUnknown,
		},
		{
			name: "session_token_when_refresh_token_not_found_sentinel",
			err:  fmt.Errorf("provider: %w", domain.ErrRefreshTokenNotFound),
			want: domain.ErrorKindSessionToken,
		},
		{
			name: "session_token_when_invalid_grant_sentinel",
			err:  domain.ErrInvalidGrant,
			want: domain.ErrorKindSessionToken,
		},
		{
			name: "session_token_when_malformed_token_sentinel",
			err:  domain.ErrMalformedToken,
			want: domain.ErrorKindSessionToken,
		},
		{
			name: "session_token_when_message_mentions_invalid_grant",
			err:  errors.New("request failed: invalid_grant"),
			want: domain.ErrorKindSessionToken,
		},
		{
			name: "auth_when_unauthorized_sentinel",
			err:  domain.ErrUnauthorized,
			want: domain.ErrorKindAuth,
		},
		{
			name: "auth_when_message_mentions_invalid_credentials",
			err:  errors.New("invalid credentials"),
			want: domain.ErrorKindAuth,
		},
		{
			name: "network_when_deadline_exceeded",
			err:  context.DeadlineExceeded,
			want: domain.ErrorKindNetwork,
		},
		{
			name: "network_when_net_error",
			err:  &net.OpError{Op: "dial", Err: os.ErrDeadlineExceeded},
			want: domain.ErrorKindNetwork,
		},
		{
			name: "network_when_message_mentions_connection_refused",
			err:  errors.New("dial tcp 127.0.0.1:9999: connection refused"),
			want: domain.ErrorKindNetwork,
		},
		{
			name: "unknown_otherwise",
			err:  errors.New("something odd happened"),
			want: domain.ErrorKindUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, domain.ClassifyError(tc.err))
		})
	}
}

func TestIsTerminalError_Returns(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "terminal_for_session_token_errors",
			err:  domain.ErrRefreshTokenNotFound,
			want: true,
		},
		{
			name: "terminal_for_auth_errors",
			err:  domain.ErrUnauthorized,
			want: true,
		},
		{
			name: "not_terminal_for_network_errors",
			err:  context.DeadlineExceeded,
			want: false,
		},
		{
			name: "not_terminal_for_unknown_errors",
			err:  errors.New("something odd happened"),
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, domain.IsTerminalError(tc.err))
		})
	}
}
