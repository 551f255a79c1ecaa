package store

import (
	"database/sql"

	"github.com/akhmetov/go-remind-sync/internal/logger"
)

// DB wraps a *sql.DB together with the logger all repositories share and the
// migration set matching the backing engine. Both the client (SQLite) and the
// server (PostgreSQL) connectors produce a *DB.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
	migrate         func(*sql.DB) error
}

// Migrate applies all pending schema migrations for the backing engine.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}
