package sql

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"strings"

	"github.com/placemarks-app/placemarks/pkg/log"
)

const (
	migrationLockName = "perform_migration_lock"
	querySeparator    = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type Migrations fs.ReadDirFS

func FSMigrations(files embed.FS) Migrations {
	return files
}

type Migration struct {
	txClient   TxClient
	migrations Migrations
	logger     log.Logger
}

func NewMigration(txClient TxClient, migrations Migrations, logger log.Logger) *Migration {
	return &Migration{txClient, migrations, logger}
}

func (m *Migration) Execute(ctx context.Context) error {
	err := m.createMigrationTableIfNotExists(ctx)
	if err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	return m.performFileMigrations(ctx)
}

func (m *Migration) performFileMigrations(ctx context.Context) error {
	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("failed to get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		migrationSQL, err := m.readFile(migrationID)
		if err != nil {
			return fmt.Errorf("failed to read migration sql: %w", err)
		}

		err = m.performMigration(ctx, migrationID, migrationSQL)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}
	return result, nil
}

func (m *Migration) readFile(fileName string) (string, error) {
	content, err := fs.ReadFile(m.migrations, fileName)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (m *Migration) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start tx: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migration) processMigration(ctx context.Context, tx ClientTx, migrationID, migrationSQL string) error {
	if migrationSQL == "" {
		return errors.New("empty migration")
	}

	err := withTransactionLevelLock(ctx, migrationLockName, tx)
	if err != nil {
		return err
	}

	err = m.createMigrationRecord(ctx, tx, migrationID)
	if err != nil {
		return err
	}

	for _, query := range m.splitToQueries(migrationSQL) {
		_, err = tx.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration) createMigrationTableIfNotExists(ctx context.Context) error {
	_, err := m.txClient.ExecContext(ctx, migrationTableDDL)
	return err
}

func (m *Migration) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var fileNames []string
	err := m.txClient.SelectContext(ctx, &fileNames, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}
	result := make(map[string]struct{}, len(fileNames))
	for _, id := range fileNames {
		result[id] = struct{}{}
	}
	return result, nil
}

func (m *Migration) createMigrationRecord(ctx context.Context, client Client, fileName string) error {
	_, err := client.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, fileName)
	return err
}

func (m *Migration) splitToQueries(sql string) []string {
	return strings.Split(sql, querySeparator)
}

func withTransactionLevelLock(ctx context.Context, name string, tx ClientTx) error {
	hash := fnv.New64a()
	_, err := hash.Write([]byte(name))
	if err != nil {
		return fmt.Errorf("create hash for lock with name %s: %w", name, err)
	}

	_, err = tx.ExecContext(ctx, "select pg_advisory_xact_lock($1)", int64(hash.Sum64()))
	if err != nil {
		return fmt.Errorf("get lock for %s: %w", name, err)
	}

	return nil
}
