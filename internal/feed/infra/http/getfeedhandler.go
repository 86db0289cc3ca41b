package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/feed/app/service"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
)

const userIDHeader = "X-User-ID"

type getFeedHandler struct {
	service *service.FeedService
}

func NewGetFeedHandler(service *service.FeedService) pkghttp.Handler {
	return getFeedHandler{service: service}
}

func (h getFeedHandler) Method() string {
	return http.MethodGet
}

func (h getFeedHandler) Path() string {
	return "/feed"
}

func (h getFeedHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	viewerID, err := pkghttp.ParseRequest(r, pkghttp.Header[uuid.UUID](userIDHeader), nil)
	if err != nil {
		return err
	}
	limit := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int]("limit"), err)

	feedLimit := 0
	if limit != nil {
		feedLimit = *limit
	}

	entries, err := h.service.GetFeed(r.Context(), viewerID, feedLimit)
	if err != nil {
		return err
	}

	out := make([]feedEntryOut, 0, len(entries))
	for _, entry := range entries {
		out = append(out, feedEntryOut{
			PlaceID:   entry.PlaceID,
			ListID:    entry.ListID,
			OwnerID:   entry.OwnerID,
			PlaceName: entry.PlaceName,
			Category:  entry.Category,
			SavedAt:   entry.SavedAt,
		})
	}
	w.SetJSONBody(getFeedOut{Entries: out})
	return nil
}

type getFeedOut struct {
	Entries []feedEntryOut `json:"entries"`
}

type feedEntryOut struct {
	PlaceID   uuid.UUID `json:"placeID"`
	ListID    uuid.UUID `json:"listID"`
	OwnerID   uuid.UUID `json:"ownerID"`
	PlaceName string    `json:"placeName"`
	Category  string    `json:"category"`
	SavedAt   time.Time `json:"savedAt"`
}
