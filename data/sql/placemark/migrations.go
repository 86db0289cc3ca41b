package placemark

import (
	"embed"

	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
)

var Migrations = pkgsql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
