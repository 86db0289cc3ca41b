package lifecycle

import "github.com/placemarks-app/placemarks/internal/session/domain"

type ValidationResult struct {
	IsValid      bool
	IsExpired    bool
	NeedsRefresh bool
	Session      *domain.Session
	Err          error
}

type RefreshResult struct {
	Success    bool
	Session    *domain.Session
	RetryCount int
	Err        error
}

// StartupResult reports the authentication state resolved during startup.
// IsAuthenticated with a nil Session means the identity was confirmed but
// no usable session tokens are available yet.
type StartupResult struct {
	IsAuthenticated bool
	Recovered       bool
	User            *domain.User
	Session         *domain.Session
}
