package http

import (
	"errors"
	"net/http"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/internal/session/infra/gotrue"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type signInHandler struct {
	authClient *gotrue.Client
}

func NewSignInHandler(authClient *gotrue.Client) pkghttp.Handler {
	return signInHandler{authClient: authClient}
}

func (h signInHandler) Method() string {
	return http.MethodPost
}

func (h signInHandler) Path() string {
	return "/auth/signin"
}

func (h signInHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[signInIn](), nil)
	if err != nil {
		return err
	}

	session, err := h.authClient.SignInWithPassword(r.Context(), data.Email, data.Password)
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidGrant) {
		w.SetStatusCode(http.StatusUnauthorized)
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toSessionOut(session))
	return nil
}

type signInIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
