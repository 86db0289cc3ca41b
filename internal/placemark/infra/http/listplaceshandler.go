package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	"github.com/placemarks-app/placemarks/internal/placemark/domain"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type listPlacesHandler struct {
	service *service.PlacemarkService
}

func NewListPlacesHandler(service *service.PlacemarkService) pkghttp.Handler {
	return listPlacesHandler{service: service}
}

func (h listPlacesHandler) Method() string {
	return http.MethodGet
}

func (h listPlacesHandler) Path() string {
	return "/list/{listID}/places"
}

func (h listPlacesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	listID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("listID"), nil)
	if err != nil {
		return err
	}
	category := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("category"), err)
	tag := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("tag"), err)
	sortBy := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("sortBy"), err)
	order := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("order"), err)

	sorting := domain.Sorting{Field: domain.SortFieldSavedAt, Descending: true}
	if sortBy != nil {
		field := domain.SortField(*sortBy)
		if !field.Valid() {
			w.SetStatusCode(http.StatusBadRequest)
			return nil
		}
		sorting.Field = field
		sorting.Descending = false
	}
	if order != nil {
		sorting.Descending = *order == "desc"
	}

	places, err := h.service.ListPlaces(r.Context(), listID, service.PlaceFilter{
		Category: category,
		Tag:      tag,
	}, sorting)
	if errors.Is(err, service.ErrListNotFound) {
		w.SetStatusCode(http.StatusNotFound)
		return nil
	}
	if err != nil {
		return err
	}

	out := make([]savedPlaceOut, 0, len(places))
	for _, place := range places {
		out = append(out, toSavedPlaceOut(place))
	}
	w.SetJSONBody(listPlacesOut{Places: out})
	return nil
}

type listPlacesOut struct {
	Places []savedPlaceOut `json:"places"`
}

type savedPlaceOut struct {
	ID          uuid.UUID `json:"id"`
	ListID      uuid.UUID `json:"listID"`
	ProviderRef string    `json:"providerRef"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Tags        []string  `json:"tags"`
	Note        string    `json:"note"`
	SavedAt     time.Time `json:"savedAt"`
}

func toSavedPlaceOut(place domain.SavedPlace) savedPlaceOut {
	return savedPlaceOut{
		ID:          place.ID,
		ListID:      place.ListID,
		ProviderRef: place.ProviderRef,
		Name:        place.Name,
		Category:    place.Category,
		Rating:      place.Rating,
		Tags:        place.Tags,
		Note:        place.Note,
		SavedAt:     place.SavedAt,
	}
}
