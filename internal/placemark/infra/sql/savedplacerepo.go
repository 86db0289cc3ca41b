package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/placemarks-app/placemarks/internal/placemark/domain"
	pkgevent "github.com/placemarks-app/placemarks/pkg/event"
	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
)

var sortColumns = map[domain.SortField]string{
	domain.SortFieldName:    "name",
	domain.SortFieldSavedAt: "saved_at",
	domain.SortFieldRating:  "rating",
}

type savedPlaceRepo struct {
	db              pkgsql.Client
	eventDispatcher pkgevent.Dispatcher
}

func NewSavedPlaceRepo(db pkgsql.Client, dispatcher pkgevent.Dispatcher) domain.SavedPlaceRepo {
	return &savedPlaceRepo{
		db:              db,
		eventDispatcher: dispatcher,
	}
}

func (r *savedPlaceRepo) FindOne(ctx context.Context, spec domain.SavedPlaceSpec) (*domain.SavedPlace, error) {
	query, args, err := r.selectQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var row sqlxSavedPlace
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSavedPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get saved place: %w", err)
	}

	result := row.toDomain()
	return &result, nil
}

func (r *savedPlaceRepo) FindAll(
	ctx context.Context,
	spec domain.SavedPlaceSpec,
	sort domain.Sorting,
) ([]domain.SavedPlace, error) {
	column, ok := sortColumns[sort.Field]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", sort.Field)
	}
	direction := "asc"
	if sort.Descending {
		direction = "desc"
	}

	query, args, err := r.selectQuery(spec).OrderBy(fmt.Sprintf("%s %s", column, direction)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var rows []sqlxSavedPlace
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select saved places: %w", err)
	}

	result := make([]domain.SavedPlace, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *savedPlaceRepo) Store(ctx context.Context, place *domain.SavedPlace) error {
	err := r.eventDispatcher.Dispatch(ctx, place.Changes)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}

	query, args, err := sq.
		Insert("saved_place").
		Columns("id", "list_id", "provider_ref", "name", "category", "rating", "tags", "note", "saved_at").
		Values(
			place.ID,
			place.ListID,
			place.ProviderRef,
			place.Name,
			place.Category,
			place.Rating,
			pq.StringArray(place.Tags),
			place.Note,
			place.SavedAt,
		).
		Suffix(`on conflict (list_id, provider_ref) do update set
			name = excluded.name,
			category = excluded.category,
			rating = excluded.rating,
			tags = excluded.tags,
			note = excluded.note,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert saved place: %w", err)
	}
	return nil
}

func (r *savedPlaceRepo) Delete(ctx context.Context, place *domain.SavedPlace) error {
	err := r.eventDispatcher.Dispatch(ctx, place.Changes)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}

	query, args, err := sq.
		Delete("saved_place").
		Where(sq.Eq{"id": place.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete saved place: %w", err)
	}
	return nil
}

func (r *savedPlaceRepo) selectQuery(spec domain.SavedPlaceSpec) sq.SelectBuilder {
	qb := sq.
		Select("id", "list_id", "provider_ref", "name", "category", "rating", "tags", "note", "saved_at").
		From("saved_place")
	if spec.ID != nil {
		qb = qb.Where(sq.Eq{"id": *spec.ID})
	}
	if spec.ListID != nil {
		qb = qb.Where(sq.Eq{"list_id": *spec.ListID})
	}
	if spec.ProviderRef != nil {
		qb = qb.Where(sq.Eq{"provider_ref": *spec.ProviderRef})
	}
	if spec.Category != nil {
		qb = qb.Where(sq.Eq{"category": *spec.Category})
	}
	if spec.Tag != nil {
		qb = qb.Where(sq.Expr("tags @> ?", pq.StringArray{*spec.Tag}))
	}
	return qb
}

type sqlxSavedPlace struct {
	ID          uuid.UUID      `db:"id"`
	ListID      uuid.UUID      `db:"list_id"`
	ProviderRef string         `db:"provider_ref"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Rating      float64        `db:"rating"`
	Tags        pq.StringArray `db:"tags"`
	Note        string         `db:"note"`
	SavedAt     time.Time      `db:"saved_at"`
}

func (p sqlxSavedPlace) toDomain() domain.SavedPlace {
	return domain.SavedPlace{
		ID:          p.ID,
		ListID:      p.ListID,
		ProviderRef: p.ProviderRef,
		Name:        p.Name,
		Category:    p.Category,
		Rating:      p.Rating,
		Tags:        p.Tags,
		Note:        p.Note,
		SavedAt:     p.SavedAt,
	}
}
