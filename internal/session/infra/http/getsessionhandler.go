package http

import (
	"net/http"

	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type getSessionHandler struct {
	sessionManager lifecycle.Manager
}

func NewGetSessionHandler(sessionManager lifecycle.Manager) pkghttp.Handler {
	return getSessionHandler{sessionManager: sessionManager}
}

func (h getSessionHandler) Method() string {
	return http.MethodGet
}

func (h getSessionHandler) Path() string {
	return "/auth/session"
}

func (h getSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	result := h.sessionManager.ValidateSession(r.Context())

	out := validationOut{
		IsValid:      result.IsValid,
		IsExpired:    result.IsExpired,
		NeedsRefresh: result.NeedsRefresh,
	}
	if result.Session != nil {
		session := toSessionOut(result.Session)
		out.Session = &session
	}
	w.SetJSONBody(out)
	return nil
}

type validationOut struct {
	IsValid      bool        `json:"isValid"`
	IsExpired    bool        `json:"isExpired"`
	NeedsRefresh bool        `json:"needsRefresh"`
	Session      *sessionOut `json:"session,omitempty"`
}
