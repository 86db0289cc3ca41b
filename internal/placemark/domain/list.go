//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ListRepo=ListRepo"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/pkg/event"
)

var ErrListNotFound = errors.New("list not found")

type (
	ListSpec struct {
		ID      *uuid.UUID
		OwnerID *uuid.UUID
	}

	ListRepo interface {
		FindOne(ctx context.Context, spec ListSpec) (*List, error)
		FindAll(ctx context.Context, spec ListSpec) ([]List, error)
		Store(ctx context.Context, list *List) error
		Delete(ctx context.Context, list *List) error
	}
)

type List struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	IsPublic    bool
	CreatedAt   time.Time
	Changes     []event.Event
}

func NewList(
	id uuid.UUID,
	ownerID uuid.UUID,
	name string,
	description string,
	isPublic bool,
	now time.Time,
) *List {
	return &List{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
		CreatedAt:   now,
		Changes: []event.Event{EventListCreated{
			EventID: uuid.New(),
			ListID:  id,
			OwnerID: ownerID,
		}},
	}
}

func (l *List) Update(name, description string, isPublic bool) {
	l.Name = name
	l.Description = description
	l.IsPublic = isPublic
}

func (l *List) Remove() {
	l.Changes = append(l.Changes, EventListDeleted{
		EventID: uuid.New(),
		ListID:  l.ID,
		OwnerID: l.OwnerID,
	})
}
