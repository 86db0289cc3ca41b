package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	aggregateNameList       = "list"
	aggregateNameSavedPlace = "saved-place"
)

type EventListCreated struct {
	EventID uuid.UUID `json:"eventID"`
	ListID  uuid.UUID `json:"listID"`
	OwnerID uuid.UUID `json:"ownerID"`
}

func (e EventListCreated) ID() uuid.UUID {
	return e.EventID
}

func (e EventListCreated) Type() string {
	return fmt.Sprintf("%s.created", aggregateNameList)
}

type EventListDeleted struct {
	EventID uuid.UUID `json:"eventID"`
	ListID  uuid.UUID `json:"listID"`
	OwnerID uuid.UUID `json:"ownerID"`
}

func (e EventListDeleted) ID() uuid.UUID {
	return e.EventID
}

func (e EventListDeleted) Type() string {
	return fmt.Sprintf("%s.deleted", aggregateNameList)
}

type EventPlaceSaved struct {
	EventID    uuid.UUID `json:"eventID"`
	PlaceID    uuid.UUID `json:"placeID"`
	ListID     uuid.UUID `json:"listID"`
	OwnerID    uuid.UUID `json:"ownerID"`
	PlaceName  string    `json:"placeName"`
	Category   string    `json:"category"`
	ListPublic bool      `json:"listPublic"`
	SavedAt    time.Time `json:"savedAt"`
}

func (e EventPlaceSaved) ID() uuid.UUID {
	return e.EventID
}

func (e EventPlaceSaved) Type() string {
	return fmt.Sprintf("%s.saved", aggregateNameSavedPlace)
}

type EventPlaceRemoved struct {
	EventID uuid.UUID `json:"eventID"`
	PlaceID uuid.UUID `json:"placeID"`
	ListID  uuid.UUID `json:"listID"`
}

func (e EventPlaceRemoved) ID() uuid.UUID {
	return e.EventID
}

func (e EventPlaceRemoved) Type() string {
	return fmt.Sprintf("%s.removed", aggregateNameSavedPlace)
}
