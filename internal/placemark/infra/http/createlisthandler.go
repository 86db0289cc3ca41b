package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

// UserIDHeader carries the authenticated user resolved by the edge proxy.
const UserIDHeader = "X-User-ID"

type createListHandler struct {
	service *service.PlacemarkService
}

func NewCreateListHandler(service *service.PlacemarkService) pkghttp.Handler {
	return createListHandler{service: service}
}

func (h createListHandler) Method() string {
	return http.MethodPost
}

func (h createListHandler) Path() string {
	return "/list"
}

func (h createListHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.Header[uuid.UUID](UserIDHeader), nil)
	data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[createListIn](), err)
	if err != nil {
		return err
	}

	listID, err := h.service.CreateList(r.Context(), ownerID, service.CreateListData{
		Name:        data.Name,
		Description: data.Description,
		IsPublic:    data.IsPublic,
	})
	if errors.Is(err, service.ErrEmptyListName) {
		w.SetStatusCode(http.StatusBadRequest)
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(createListOut{ListID: listID})
	return nil
}

type createListIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

type createListOut struct {
	ListID uuid.UUID `json:"id"`
}
