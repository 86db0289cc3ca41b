package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	"github.com/placemarks-app/placemarks/internal/placemark/domain"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type getListsHandler struct {
	service *service.PlacemarkService
}

func NewGetListsHandler(service *service.PlacemarkService) pkghttp.Handler {
	return getListsHandler{service: service}
}

func (h getListsHandler) Method() string {
	return http.MethodGet
}

func (h getListsHandler) Path() string {
	return "/lists"
}

func (h getListsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.Header[uuid.UUID](UserIDHeader), nil)
	if err != nil {
		return err
	}

	lists, err := h.service.ListLists(r.Context(), ownerID)
	if err != nil {
		return err
	}

	out := make([]listOut, 0, len(lists))
	for _, list := range lists {
		out = append(out, toListOut(list))
	}
	w.SetJSONBody(getListsOut{Lists: out})
	return nil
}

type getListsOut struct {
	Lists []listOut `json:"lists"`
}

type listOut struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toListOut(list domain.List) listOut {
	return listOut{
		ID:          list.ID,
		OwnerID:     list.OwnerID,
		Name:        list.Name,
		Description: list.Description,
		IsPublic:    list.IsPublic,
		CreatedAt:   list.CreatedAt,
	}
}
