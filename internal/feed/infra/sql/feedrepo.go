package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/placemarks-app/placemarks/internal/feed/domain"
	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
)

type feedRepo struct {
	db pkgsql.Client
}

func NewFeedRepo(db pkgsql.Client) domain.FeedRepo {
	return &feedRepo{db: db}
}

func (r *feedRepo) Upsert(ctx context.Context, entry domain.FeedEntry) error {
	query, args, err := sq.
		Insert("feed_entry").
		Columns("place_id", "list_id", "owner_id", "place_name", "category", "saved_at").
		Values(entry.PlaceID, entry.ListID, entry.OwnerID, entry.PlaceName, entry.Category, entry.SavedAt).
		Suffix(`on conflict (place_id) do update set
			place_name = excluded.place_name,
			category = excluded.category,
			saved_at = excluded.saved_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert feed entry: %w", err)
	}
	return nil
}

func (r *feedRepo) Delete(ctx context.Context, placeID uuid.UUID) error {
	query, args, err := sq.
		Delete("feed_entry").
		Where(sq.Eq{"place_id": placeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete feed entry: %w", err)
	}
	return nil
}

func (r *feedRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	query, args, err := sq.
		Delete("feed_entry").
		Where(sq.Lt{"saved_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sql: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete old feed entries: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted feed entries: %w", err)
	}
	return int(deleted), nil
}

func (r *feedRepo) FindRecent(ctx context.Context, excludeOwnerID uuid.UUID, limit int) ([]domain.FeedEntry, error) {
	query, args, err := sq.
		Select("place_id", "list_id", "owner_id", "place_name", "category", "saved_at").
		From("feed_entry").
		Where(sq.NotEq{"owner_id": excludeOwnerID}).
		OrderBy("saved_at desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var rows []sqlxFeedEntry
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select feed entries: %w", err)
	}

	result := make([]domain.FeedEntry, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.FeedEntry{
			PlaceID:   row.PlaceID,
			ListID:    row.ListID,
			OwnerID:   row.OwnerID,
			PlaceName: row.PlaceName,
			Category:  row.Category,
			SavedAt:   row.SavedAt,
		})
	}
	return result, nil
}

type sqlxFeedEntry struct {
	PlaceID   uuid.UUID `db:"place_id"`
	ListID    uuid.UUID `db:"list_id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	PlaceName string    `db:"place_name"`
	Category  string    `db:"category"`
	SavedAt   time.Time `db:"saved_at"`
}
