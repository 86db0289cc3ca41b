package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type deleteListHandler struct {
	service *service.PlacemarkService
}

func NewDeleteListHandler(service *service.PlacemarkService) pkghttp.Handler {
	return deleteListHandler{service: service}
}

func (h deleteListHandler) Method() string {
	return http.MethodDelete
}

func (h deleteListHandler) Path() string {
	return "/list/{listID}"
}

func (h deleteListHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.Header[uuid.UUID](UserIDHeader), nil)
	listID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("listID"), err)
	if err != nil {
		return err
	}

	err = h.service.DeleteList(r.Context(), ownerID, listID)
	switch {
	case errors.Is(err, service.ErrListNotFound):
		w.SetStatusCode(http.StatusNotFound)
		return nil
	case errors.Is(err, service.ErrListAccessDenied):
		w.SetStatusCode(http.StatusForbidden)
		return nil
	case err != nil:
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
