package cmd

import (
	"context"
	"fmt"

	"github.com/placemarks-app/placemarks/pkg/log"
	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
)

type (
	SQLMigrations interface {
		MustExecute(sources ...pkgsql.Migrations)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     pkgsql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db pkgsql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func (s *sqlMigrations) MustExecute(sources ...pkgsql.Migrations) {
	for _, source := range sources {
		err := pkgsql.NewMigration(s.db, source, s.logger).Execute(s.ctx)
		if err != nil {
			panic(fmt.Errorf("execute migrations: %w", err))
		}
	}
}
