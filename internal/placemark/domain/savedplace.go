//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SavedPlaceRepo=SavedPlaceRepo"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/pkg/event"
)

var ErrSavedPlaceNotFound = errors.New("saved place not found")

const (
	SortFieldName    SortField = "name"
	SortFieldSavedAt SortField = "saved_at"
	SortFieldRating  SortField = "rating"
)

type (
	SortField string

	Sorting struct {
		Field      SortField
		Descending bool
	}

	SavedPlaceSpec struct {
		ID          *uuid.UUID
		ListID      *uuid.UUID
		ProviderRef *string
		Category    *string
		Tag         *string
	}

	SavedPlaceRepo interface {
		FindOne(ctx context.Context, spec SavedPlaceSpec) (*SavedPlace, error)
		FindAll(ctx context.Context, spec SavedPlaceSpec, sort Sorting) ([]SavedPlace, error)
		Store(ctx context.Context, place *SavedPlace) error
		Delete(ctx context.Context, place *SavedPlace) error
	}
)

func (f SortField) Valid() bool {
	switch f {
	case SortFieldName, SortFieldSavedAt, SortFieldRating:
		return true
	default:
		return false
	}
}

// SavedPlace is a place pinned to a list. ProviderRef is the identifier
// of the place in the external places catalog, unique within a list.
type SavedPlace struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	ProviderRef string
	Name        string
	Category    string
	Rating      float64
	Tags        []string
	Note        string
	SavedAt     time.Time
	Changes     []event.Event
}

func NewSavedPlace(
	id uuid.UUID,
	list *List,
	providerRef string,
	name string,
	category string,
	rating float64,
	tags []string,
	note string,
	now time.Time,
) *SavedPlace {
	return &SavedPlace{
		ID:          id,
		ListID:      list.ID,
		ProviderRef: providerRef,
		Name:        name,
		Category:    category,
		Rating:      rating,
		Tags:        tags,
		Note:        note,
		SavedAt:     now,
		Changes: []event.Event{EventPlaceSaved{
			EventID:    uuid.New(),
			PlaceID:    id,
			ListID:     list.ID,
			OwnerID:    list.OwnerID,
			PlaceName:  name,
			Category:   category,
			ListPublic: list.IsPublic,
			SavedAt:    now,
		}},
	}
}

func (p *SavedPlace) Remove() {
	p.Changes = append(p.Changes, EventPlaceRemoved{
		EventID: uuid.New(),
		PlaceID: p.ID,
		ListID:  p.ListID,
	})
}
