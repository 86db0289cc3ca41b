package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type updateListHandler struct {
	service *service.PlacemarkService
}

func NewUpdateListHandler(service *service.PlacemarkService) pkghttp.Handler {
	return updateListHandler{service: service}
}

func (h updateListHandler) Method() string {
	return http.MethodPut
}

func (h updateListHandler) Path() string {
	return "/list/{listID}"
}

func (h updateListHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.Header[uuid.UUID](UserIDHeader), nil)
	listID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("listID"), err)
	data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[updateListIn](), err)
	if err != nil {
		return err
	}

	err = h.service.UpdateList(r.Context(), ownerID, listID, service.UpdateListData{
		Name:        data.Name,
		Description: data.Description,
		IsPublic:    data.IsPublic,
	})
	switch {
	case errors.Is(err, service.ErrEmptyListName):
		w.SetStatusCode(http.StatusBadRequest)
		return nil
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

type updateListIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}
