package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/pkg/errors"
)

// Open opens the SQLite3 session DB at path, creating it when missing, and
// upgrades its schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	// sessions are small and short lived
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	version, changed, err := upgrade(db)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db.migrate")
	}
	if changed {
		log.Infof("session db %s migrated to version %d", path, version)
	} else {
		log.Debugf("session db %s at version %d", path, version)
	}
	return db, nil
}
