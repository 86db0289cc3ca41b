package external

import (
	"time"

	"github.com/google/uuid"
)

// Events published by the placemark context, duplicated here so the
// feed projection does not depend on the producer's packages.

const (
	EventTypePlaceSaved   = "saved-place.saved"
	EventTypePlaceRemoved = "saved-place.removed"
)

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
	return EventTypePlaceSaved
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
	return EventTypePlaceRemoved
}
