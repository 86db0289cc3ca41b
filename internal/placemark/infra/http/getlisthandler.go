package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type getListHandler struct {
	service *service.PlacemarkService
}

func NewGetListHandler(service *service.PlacemarkService) pkghttp.Handler {
	return getListHandler{service: service}
}

func (h getListHandler) Method() string {
	return http.MethodGet
}

func (h getListHandler) Path() string {
	return "/list/{listID}"
}

func (h getListHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	listID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("listID"), nil)
	if err != nil {
		return err
	}

	list, err := h.service.GetList(r.Context(), listID)
	if errors.Is(err, service.ErrListNotFound) {
		w.SetStatusCode(http.StatusNotFound)
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toListOut(*list))
	return nil
}
