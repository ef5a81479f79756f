package database

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var sessionMigrations embed.FS

// SchemaVersion is the session schema the embedded migrations lead to.
const SchemaVersion = 1

// upgrade applies the pending session migrations and reports the schema
// version db ends up at, and whether anything was applied.
func upgrade(db *sql.DB) (version uint, changed bool, err error) {
	src, err := iofs.New(sessionMigrations, "migrations")
	if err != nil {
		return 0, false, errors.Wrap(err, "migrations source")
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{MigrationsTable: "session_migrations"})
	if err != nil {
		return 0, false, errors.Wrap(err, "migrations driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return 0, false, err
	}

	switch err = m.Up(); {
	case err == nil:
		changed = true
	case !errors.Is(err, migrate.ErrNoChange):
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, false, err
	}
	if dirty {
		return version, changed, errors.Errorf("session schema left dirty at version %d", version)
	}
	return version, changed, nil
}
