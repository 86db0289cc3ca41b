package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/clock"
)

const schema = `
CREATE TABLE IF NOT EXISTS cache_entry (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
)`

// sqlite supports dollar parameters only by name, so the builder pins
// the question mark placeholder format.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// keyPrefixCond matches keys starting with prefix, with LIKE
// metacharacters in the prefix taken literally.
func keyPrefixCond(prefix string) sq.Sqlizer {
	return sq.Expr(`key LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%")
}

// Store is a file-backed session store surviving process restarts.
type Store struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewStore(path string, clk clock.Clock) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &Store{db: db, clock: clk}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := queryBuilder.
		Select("value", "expires_at").
		From("cache_entry").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		Value     []byte `db:"value"`
		ExpiresAt int64  `db:"expires_at"`
	}
	err = s.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cache entry: %w", err)
	}
	if row.ExpiresAt > 0 && row.ExpiresAt <= s.clock.Now().Unix() {
		return nil, domain.ErrKeyNotFound
	}
	return row.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, expiresAt time.Time) error {
	var expiresAtUnix int64
	if !expiresAt.IsZero() {
		expiresAtUnix = expiresAt.Unix()
	}

	query, args, err := queryBuilder.
		Insert("cache_entry").
		Columns("key", "value", "expires_at").
		Values(key, value, expiresAtUnix).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set cache entry: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := queryBuilder.
		Delete("cache_entry").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := queryBuilder.
		Select("key").
		From("cache_entry").
		Where(keyPrefixCond(prefix)).
		Where(sq.Or{
			sq.Eq{"expires_at": 0},
			sq.Gt{"expires_at": s.clock.Now().Unix()},
		}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var keys []string
	if err := s.db.SelectContext(ctx, &keys, query, args...); err != nil {
		return nil, fmt.Errorf("list cache keys: %w", err)
	}
	return keys, nil
}

func (s *Store) DeleteByPrefix(ctx context.Context, prefix string) error {
	query, args, err := queryBuilder.
		Delete("cache_entry").
		Where(keyPrefixCond(prefix)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete cache entries: %w", err)
	}
	return nil
}

func (s *Store) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := queryBuilder.
		Delete("cache_entry").
		Where(sq.Gt{"expires_at": 0}).
		Where(sq.LtOrEq{"expires_at": s.clock.Now().Unix()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired cache entries: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted cache entries: %w", err)
	}
	return int(deleted), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

var _ domain.Store = &Store{}
