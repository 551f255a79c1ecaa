package store

import (
	"context"
	"fmt"

	"github.com/akhmetov/go-remind-sync/internal/config"
	"github.com/akhmetov/go-remind-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ReminderRepository is the SQLite-backed repository for reminders.
	ReminderRepository LocalReminderRepository
	// CategoryRepository is the SQLite-backed repository for categories.
	CategoryRepository LocalCategoryRepository
	// SavedPlaceRepository is the SQLite-backed repository for saved places.
	SavedPlaceRepository LocalSavedPlaceRepository
	// SyncQueueRepository is the SQLite-backed outbound sync queue.
	SyncQueueRepository LocalSyncQueueRepository
	// IdentityRepository holds local identities and the guest migration path.
	IdentityRepository LocalIdentityRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing the same connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ReminderRepository:   NewLocalReminderRepository(db, logger),
		CategoryRepository:   NewLocalCategoryRepository(db, logger),
		SavedPlaceRepository: NewLocalSavedPlaceRepository(db, logger),
		SyncQueueRepository:  NewLocalSyncQueueRepository(db, logger),
		IdentityRepository:   NewLocalIdentityRepository(db, logger),
	}, nil
}
