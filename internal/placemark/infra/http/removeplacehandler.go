package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type removePlaceHandler struct {
	service *service.PlacemarkService
}

func NewRemovePlaceHandler(service *service.PlacemarkService) pkghttp.Handler {
	return removePlaceHandler{service: service}
}

func (h removePlaceHandler) Method() string {
	return http.MethodDelete
}

func (h removePlaceHandler) Path() string {
	return "/list/{listID}/place/{placeID}"
}

func (h removePlaceHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.Header[uuid.UUID](UserIDHeader), nil)
	listID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("listID"), err)
	placeID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("placeID"), err)
	if err != nil {
		return err
	}

	err = h.service.RemovePlace(r.Context(), ownerID, listID, placeID)
	switch {
	case errors.Is(err, service.ErrListNotFound), errors.Is(err, service.ErrSavedPlaceNotFound):
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
