package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/flightsearch/flightsearch/internal/config"
	"github.com/flightsearch/flightsearch/internal/logger"
	"github.com/flightsearch/flightsearch/migrations"
)

// Driver names understood by [NewConnect].
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// DB wraps the shared *sql.DB handle together with the dialect it was opened
// with, so repositories can pick placeholder formats and error mappings.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Dialect returns the driver name the connection was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate brings the connected database up to the latest schema version.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// NewConnect opens a database connection for the configured DSN. A DSN with
// a postgres scheme goes through the pgx stdlib driver; anything else is
// treated as a SQLite file path, which is the reference deployment.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
