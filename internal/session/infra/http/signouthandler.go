package http

import (
	"net/http"

	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type signOutHandler struct {
	sessionManager lifecycle.Manager
}

func NewSignOutHandler(sessionManager lifecycle.Manager) pkghttp.Handler {
	return signOutHandler{sessionManager: sessionManager}
}

func (h signOutHandler) Method() string {
	return http.MethodPost
}

func (h signOutHandler) Path() string {
	return "/auth/signout"
}

func (h signOutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	if err := h.sessionManager.ClearStaleSessionData(r.Context()); err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
