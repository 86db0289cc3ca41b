package lifecycle

import (
	"context"

	"github.com/placemarks-app/placemarks/internal/session/domain"
)

// Provider is the auth backend the lifecycle components operate on.
// Session and User read the currently known state, Refresh exchanges
// the refresh token for a new session and persists it.
//
//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Provider=Provider"
type Provider interface {
	Session(ctx context.Context) (*domain.Session, error)
	User(ctx context.Context) (*domain.User, error)
	Refresh(ctx context.Context) (*domain.Session, error)
	SignOut(ctx context.Context) error
}
