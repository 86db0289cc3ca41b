package places

import (
	"context"
	"fmt"
	"strconv"

	"github.com/placemarks-app/placemarks/internal/placemark/app/external"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

const DestinationName = "places-catalog"

type Config struct {
	BaseURL string
	APIKey  string
}

type service struct {
	httpClient pkghttp.Client
}

func NewService(httpClient pkghttp.Client, config Config) external.PlacesSearch {
	return service{
		httpClient: httpClient.With(
			pkghttp.WithClientDestination(DestinationName, config.BaseURL),
			pkghttp.WithClientHeader("Authorization", "Bearer "+config.APIKey),
		),
	}
}

func (s service) Search(ctx context.Context, query string, limit int) ([]external.FoundPlace, error) {
	var result searchResponse
	resp, err := s.httpClient.NewRequest(ctx).
		SetQueryParam("query", query).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/v1/places/search")
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search places: unexpected status %d", resp.StatusCode())
	}

	found := make([]external.FoundPlace, 0, len(result.Places))
	for _, place := range result.Places {
		found = append(found, external.FoundPlace{
			ProviderRef: place.ID,
			Name:        place.Name,
			Category:    place.Category,
			Rating:      place.Rating,
			Address:     place.Address,
		})
	}
	return found, nil
}

type searchResponse struct {
	Places []placeData `json:"places"`
}

type placeData struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Address  string  `json:"address"`
}
