// Package migrations embeds the goose schema migrations of both processes:
// client/ holds the SQLite schema of the local contact store, server/ the
// PostgreSQL schema of the contacts server.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

var errNilDB = errors.New("db is nil")

// MigrateClient applies the local store schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, goose.DialectSQLite3, "client")
}

// MigrateServer applies the contacts server schema to a PostgreSQL database.
func MigrateServer(db *sql.DB) error {
	return migrate(db, goose.DialectPostgres, "server")
}

func migrate(db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
