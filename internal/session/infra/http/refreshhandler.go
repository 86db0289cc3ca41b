package http

import (
	"net/http"

	"github.com/placemarks-app/placemarks/internal/session/app/lifecycle"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type refreshHandler struct {
	sessionManager lifecycle.Manager
}

func NewRefreshHandler(sessionManager lifecycle.Manager) pkghttp.Handler {
	return refreshHandler{sessionManager: sessionManager}
}

func (h refreshHandler) Method() string {
	return http.MethodPost
}

func (h refreshHandler) Path() string {
	return "/auth/refresh"
}

func (h refreshHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	maxRetries := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int]("maxRetries"), nil)

	attempts := 0
	if maxRetries != nil {
		attempts = *maxRetries
	}

	result := h.sessionManager.RefreshSessionWithRetry(r.Context(), attempts)
	if !result.Success {
		w.SetStatusCode(http.StatusUnauthorized)
		w.SetJSONBody(refreshOut{RetryCount: result.RetryCount})
		return nil
	}

	session := toSessionOut(result.Session)
	w.SetJSONBody(refreshOut{
		Success:    true,
		RetryCount: result.RetryCount,
		Session:    &session,
	})
	return nil
}

type refreshOut struct {
	Success    bool        `json:"success"`
	RetryCount int         `json:"retryCount"`
	Session    *sessionOut `json:"session,omitempty"`
}
