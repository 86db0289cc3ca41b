package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placemarks-app/placemarks/internal/placemark/domain"
)

func TestNewList_EmitsCreatedEvent(t *testing.T) {
	listID := uuid.New()
	ownerID := uuid.New()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	list := domain.NewList(listID, ownerID, "Coffee spots", "Places to work from", true, now)

	assert.Equal(t, listID, list.ID)
	assert.Equal(t, ownerID, list.OwnerID)
	assert.Equal(t, now, list.CreatedAt)
	require.Len(t, list.Changes, 1)

	evt, ok := list.Changes[0].(domain.EventListCreated)
	require.True(t, ok)
	assert.Equal(t, listID, evt.ListID)
	assert.Equal(t, ownerID, evt.OwnerID)
	assert.NotEqual(t, uuid.Nil, evt.EventID)
}

func TestList_Remove_EmitsDeletedEvent(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	list := domain.NewList(uuid.New(), uuid.New(), "Coffee spots", "", false, now)

	list.Remove()

	require.Len(t, list.Changes, 2)
	evt, ok := list.Changes[1].(domain.EventListDeleted)
	require.True(t, ok)
	assert.Equal(t, list.ID, evt.ListID)
	assert.Equal(t, list.OwnerID, evt.OwnerID)
}

func TestNewSavedPlace_EmitsSavedEvent(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	list := domain.NewList(uuid.New(), uuid.New(), "Coffee spots", "", true, now)
	placeID := uuid.New()

	place := domain.NewSavedPlace(
		placeID,
		list,
		"osm:node/123",
		"Third Wave",
		"cafe",
		4.5,
		[]string{"wifi", "quiet"},
		"good flat white",
		now,
	)

	assert.Equal(t, list.ID, place.ListID)
	assert.Equal(t, now, place.SavedAt)
	require.Len(t, place.Changes, 1)

	evt, ok := place.Changes[0].(domain.EventPlaceSaved)
	require.True(t, ok)
	assert.Equal(t, placeID, evt.PlaceID)
	assert.Equal(t, list.ID, evt.ListID)
	assert.Equal(t, list.OwnerID, evt.OwnerID)
	assert.Equal(t, "Third Wave", evt.PlaceName)
	assert.Equal(t, "cafe", evt.Category)
	assert.True(t, evt.ListPublic)
}

func TestSavedPlace_Remove_EmitsRemovedEvent(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	list := domain.NewList(uuid.New(), uuid.New(), "Coffee spots", "", true, now)
	place := domain.NewSavedPlace(uuid.New(), list, "osm:node/123", "Third Wave", "cafe", 4.5, nil, "", now)

	place.Remove()

	require.Len(t, place.Changes, 2)
	evt, ok := place.Changes[1].(domain.EventPlaceRemoved)
	require.True(t, ok)
	assert.Equal(t, place.ID, evt.PlaceID)
	assert.Equal(t, place.ListID, evt.ListID)
}

func TestSortField_Valid_Returns(t *testing.T) {
	tests := []struct {
		name  string
		field domain.SortField
		want  bool
	}{
		{name: "name", field: domain.SortFieldName, want: true},
		{name: "saved_at", field: domain.SortFieldSavedAt, want: true},
		{name: "rating", field: domain.SortFieldRating, want: true},
		{name: "empty", field: domain.SortField(""), want: false},
		{name: "unknown", field: domain.SortField("distance"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.field.Valid())
		})
	}
}
