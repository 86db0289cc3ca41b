package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type savePlaceHandler struct {
	service *service.PlacemarkService
}

func NewSavePlaceHandler(service *service.PlacemarkService) pkghttp.Handler {
	return savePlaceHandler{service: service}
}

func (h savePlaceHandler) Method() string {
	return http.MethodPost
}

func (h savePlaceHandler) Path() string {
	return "/list/{listID}/place"
}

func (h savePlaceHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.Header[uuid.UUID](UserIDHeader), nil)
	listID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("listID"), err)
	data, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[savePlaceIn](), err)
	if err != nil {
		return err
	}

	placeID, err := h.service.SavePlace(r.Context(), ownerID, listID, service.SavePlaceData{
		ProviderRef: data.ProviderRef,
		Name:        data.Name,
		Category:    data.Category,
		Rating:      data.Rating,
		Tags:        data.Tags,
		Note:        data.Note,
	})
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

	w.SetJSONBody(savePlaceOut{PlaceID: placeID})
	return nil
}

type savePlaceIn struct {
	ProviderRef string   `json:"providerRef"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
	Note        string   `json:"note"`
}

type savePlaceOut struct {
	PlaceID uuid.UUID `json:"id"`
}
