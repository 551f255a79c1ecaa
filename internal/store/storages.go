package store

import (
	"context"
	"fmt"

	"github.com/akhmetov/go-remind-sync/internal/config"
	"github.com/akhmetov/go-remind-sync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RemoteRecordRepository
	// Classifier decides whether a failed DB operation is transient; the
	// HTTP layer uses it to pick between 500 and 503.
	Classifier ErrorClassifier
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// server repositories.
func NewStorages(cfg config.ServerDB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		RecordRepository: NewRemoteRecordRepository(db, logger),
		Classifier:       db.errorClassifier,
	}, nil
}
