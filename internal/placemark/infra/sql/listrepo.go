package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/placemark/domain"
	pkgevent "github.com/placemarks-app/placemarks/pkg/event"
	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
)

type listRepo struct {
	db              pkgsql.Client
	eventDispatcher pkgevent.Dispatcher
}

func NewListRepo(db pkgsql.Client, dispatcher pkgevent.Dispatcher) domain.ListRepo {
	return &listRepo{
		db:              db,
		eventDispatcher: dispatcher,
	}
}

func (r *listRepo) FindOne(ctx context.Context, spec domain.ListSpec) (*domain.List, error) {
	query, args, err := r.selectQuery(spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var row sqlxList
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	result := row.toDomain()
	return &result, nil
}

func (r *listRepo) FindAll(ctx context.Context, spec domain.ListSpec) ([]domain.List, error) {
	query, args, err := r.selectQuery(spec).OrderBy("created_at desc").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var rows []sqlxList
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select lists: %w", err)
	}

	result := make([]domain.List, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *listRepo) Store(ctx context.Context, list *domain.List) error {
	err := r.eventDispatcher.Dispatch(ctx, list.Changes)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}

	query, args, err := sq.
		Insert("list").
		Columns("id", "owner_id", "name", "description", "is_public", "created_at").
		Values(list.ID, list.OwnerID, list.Name, list.Description, list.IsPublic, list.CreatedAt).
		Suffix(`on conflict (id) do update set
			name = excluded.name,
			description = excluded.description,
			is_public = excluded.is_public,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert list: %w", err)
	}
	return nil
}

func (r *listRepo) Delete(ctx context.Context, list *domain.List) error {
	err := r.eventDispatcher.Dispatch(ctx, list.Changes)
	if err != nil {
		return fmt.Errorf("dispatch events: %w", err)
	}

	// Saved places go with the list via the FK cascade.
	query, args, err := sq.
		Delete("list").
		Where(sq.Eq{"id": list.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (r *listRepo) selectQuery(spec domain.ListSpec) sq.SelectBuilder {
	qb := sq.
		Select("id", "owner_id", "name", "description", "is_public", "created_at").
		From("list")
	if spec.ID != nil {
		qb = qb.Where(sq.Eq{"id": *spec.ID})
	}
	if spec.OwnerID != nil {
		qb = qb.Where(sq.Eq{"owner_id": *spec.OwnerID})
	}
	return qb
}

type sqlxList struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsPublic    bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"`
}

func (l sqlxList) toDomain() domain.List {
	return domain.List{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Name:        l.Name,
		Description: l.Description,
		IsPublic:    l.IsPublic,
		CreatedAt:   l.CreatedAt,
	}
}
