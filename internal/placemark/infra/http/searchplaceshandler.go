package http

import (
	"net/http"

	"github.com/placemarks-app/placemarks/internal/placemark/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

type searchPlacesHandler struct {
	service *service.PlacemarkService
}

func NewSearchPlacesHandler(service *service.PlacemarkService) pkghttp.Handler {
	return searchPlacesHandler{service: service}
}

func (h searchPlacesHandler) Method() string {
	return http.MethodGet
}

func (h searchPlacesHandler) Path() string {
	return "/places/search"
}

func (h searchPlacesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	query, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[string]("query"), nil)
	if err != nil {
		return err
	}
	limit := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int]("limit"), err)

	searchLimit := 0
	if limit != nil {
		searchLimit = *limit
	}

	found, err := h.service.SearchPlaces(r.Context(), query, searchLimit)
	if err != nil {
		return err
	}

	out := make([]foundPlaceOut, 0, len(found))
	for _, place := range found {
		out = append(out, foundPlaceOut{
			ProviderRef: place.ProviderRef,
			Name:        place.Name,
			Category:    place.Category,
			Rating:      place.Rating,
			Address:     place.Address,
		})
	}
	w.SetJSONBody(searchPlacesOut{Places: out})
	return nil
}

type searchPlacesOut struct {
	Places []foundPlaceOut `json:"places"`
}

type foundPlaceOut struct {
	ProviderRef string  `json:"providerRef"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Address     string  `json:"address"`
}
