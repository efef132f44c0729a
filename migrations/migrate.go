// Package migrations embeds the SQL schema and applies it with goose.
//
// The schema is kept per dialect: the server runs on SQLite by default and
// on PostgreSQL when a postgres DSN is configured, and the two engines do
// not share identity-column syntax.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite3/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate brings the given database up to the latest schema version.
// dialect must be "sqlite3" or "pgx"; it selects both the goose dialect and
// the embedded migration directory.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	dir := "sqlite3"
	if dialect == "pgx" {
		dir = "postgres"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
