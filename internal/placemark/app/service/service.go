package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/app/external"
	"github.com/placemarks-app/placemarks/internal/placemark/domain"
	"github.com/placemarks-app/placemarks/pkg/clock"
)

var (
	ErrListNotFound       = errors.New("list not found")
	ErrSavedPlaceNotFound = errors.New("saved place not found")
	ErrEmptyListName      = errors.New("list name must not be empty")
	ErrListAccessDenied   = errors.New("list belongs to another user")
)

const defaultSearchLimit = 20

type (
	CreateListData struct {
		Name        string
		Description string
		IsPublic    bool
	}

	UpdateListData struct {
		Name        string
		Description string
		IsPublic    bool
	}

	SavePlaceData struct {
		ProviderRef string
		Name        string
		Category    string
		Rating      float64
		Tags        []string
		Note        string
	}

	PlaceFilter struct {
		Category *string
		Tag      *string
	}
)

type PlacemarkService struct {
	placesSearch external.PlacesSearch
	listRepo     domain.ListRepo
	placeRepo    domain.SavedPlaceRepo
	clock        clock.Clock
}

func NewPlacemarkService(
	placesSearch external.PlacesSearch,
	listRepo domain.ListRepo,
	placeRepo domain.SavedPlaceRepo,
	clk clock.Clock,
) *PlacemarkService {
	return &PlacemarkService{
		placesSearch: placesSearch,
		listRepo:     listRepo,
		placeRepo:    placeRepo,
		clock:        clk,
	}
}

func (s *PlacemarkService) CreateList(ctx context.Context, ownerID uuid.UUID, data CreateListData) (uuid.UUID, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return uuid.Nil, ErrEmptyListName
	}

	list := domain.NewList(uuid.New(), ownerID, name, data.Description, data.IsPublic, s.clock.Now())
	if err := s.listRepo.Store(ctx, list); err != nil {
		return uuid.Nil, fmt.Errorf("store list: %w", err)
	}
	return list.ID, nil
}

func (s *PlacemarkService) UpdateList(ctx context.Context, ownerID, listID uuid.UUID, data UpdateListData) error {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return ErrEmptyListName
	}

	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return err
	}

	list.Update(name, data.Description, data.IsPublic)
	if err := s.listRepo.Store(ctx, list); err != nil {
		return fmt.Errorf("store list: %w", err)
	}
	return nil
}

// DeleteList removes the list with its saved places. Feed entries built
// from those places are kept, they age out of the recent window instead.
func (s *PlacemarkService) DeleteList(ctx context.Context, ownerID, listID uuid.UUID) error {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return err
	}

	list.Remove()
	if err := s.listRepo.Delete(ctx, list); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (s *PlacemarkService) GetList(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	list, err := s.listRepo.FindOne(ctx, domain.ListSpec{ID: &listID})
	if errors.Is(err, domain.ErrListNotFound) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find list: %w", err)
	}
	return list, nil
}

func (s *PlacemarkService) ListLists(ctx context.Context, ownerID uuid.UUID) ([]domain.List, error) {
	lists, err := s.listRepo.FindAll(ctx, domain.ListSpec{OwnerID: &ownerID})
	if err != nil {
		return nil, fmt.Errorf("find lists: %w", err)
	}
	return lists, nil
}

// SavePlace is idempotent by (list, provider reference): saving a place
// already present in the list returns the existing entry.
func (s *PlacemarkService) SavePlace(
	ctx context.Context,
	ownerID uuid.UUID,
	listID uuid.UUID,
	data SavePlaceData,
) (uuid.UUID, error) {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return uuid.Nil, err
	}

	existing, err := s.placeRepo.FindOne(ctx, domain.SavedPlaceSpec{
		ListID:      &listID,
		ProviderRef: &data.ProviderRef,
	})
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrSavedPlaceNotFound) {
		return uuid.Nil, fmt.Errorf("find saved place: %w", err)
	}

	place := domain.NewSavedPlace(
		uuid.New(),
		list,
		data.ProviderRef,
		data.Name,
		data.Category,
		data.Rating,
		data.Tags,
		data.Note,
		s.clock.Now(),
	)
	if err := s.placeRepo.Store(ctx, place); err != nil {
		return uuid.Nil, fmt.Errorf("store saved place: %w", err)
	}
	return place.ID, nil
}

func (s *PlacemarkService) RemovePlace(ctx context.Context, ownerID, listID, placeID uuid.UUID) error {
	if _, err := s.ownedList(ctx, ownerID, listID); err != nil {
		return err
	}

	place, err := s.placeRepo.FindOne(ctx, domain.SavedPlaceSpec{ID: &placeID, ListID: &listID})
	if errors.Is(err, domain.ErrSavedPlaceNotFound) {
		return ErrSavedPlaceNotFound
	}
	if err != nil {
		return fmt.Errorf("find saved place: %w", err)
	}

	place.Remove()
	if err := s.placeRepo.Delete(ctx, place); err != nil {
		return fmt.Errorf("delete saved place: %w", err)
	}
	return nil
}

func (s *PlacemarkService) ListPlaces(
	ctx context.Context,
	listID uuid.UUID,
	filter PlaceFilter,
	sort domain.Sorting,
) ([]domain.SavedPlace, error) {
	if _, err := s.GetList(ctx, listID); err != nil {
		return nil, err
	}
	if sort.Field == "" {
		sort.Field = domain.SortFieldSavedAt
	}

	places, err := s.placeRepo.FindAll(ctx, domain.SavedPlaceSpec{
		ListID:   &listID,
		Category: filter.Category,
		Tag:      filter.Tag,
	}, sort)
	if err != nil {
		return nil, fmt.Errorf("find saved places: %w", err)
	}
	return places, nil
}

func (s *PlacemarkService) SearchPlaces(ctx context.Context, query string, limit int) ([]external.FoundPlace, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	found, err := s.placesSearch.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}
	return found, nil
}

func (s *PlacemarkService) ownedList(ctx context.Context, ownerID, listID uuid.UUID) (*domain.List, error) {
	list, err := s.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.OwnerID != ownerID {
		return nil, ErrListAccessDenied
	}
	return list, nil
}
