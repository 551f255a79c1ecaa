package store

import (
	"context"
	"fmt"
	"time"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/models"
)

type localSyncQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSyncQueueRepository(db *DB, logger *logger.Logger) LocalSyncQueueRepository {
	return &localSyncQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSyncQueueRepository) Enqueue(ctx context.Context, entry models.SyncQueueEntry) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, enqueueSyncEntry,
		entry.ID,
		entry.EntityType,
		entry.EntityID,
		entry.Operation,
		string(entry.Payload),
		entry.OwnerID,
		entry.Attempts,
		entry.LastAttemptAt,
		entry.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("owner_id", entry.OwnerID).
			Str("entry_id", entry.ID).
			Msg("failed to enqueue sync entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// PendingFor returns the owner's live entries oldest-first. Entries at or
// beyond the attempt cap are dead-lettered and excluded.
func (l *localSyncQueueRepository) PendingFor(ctx context.Context, ownerID string) ([]models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getPendingSyncEntries, ownerID, models.MaxSyncAttempts)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.PendingFor").
			Str("owner_id", ownerID).
			Msg("failed to query pending sync entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.SyncQueueEntry

	for rows.Next() {
		var entry models.SyncQueueEntry
		var payload string

		scanErr := rows.Scan(
			&entry.ID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Operation,
			&payload,
			&entry.OwnerID,
			&entry.Attempts,
			&entry.LastAttemptAt,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncQueueRepository.PendingFor").
				Str("owner_id", ownerID).
				Msg("failed to scan sync entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		entry.Payload = []byte(payload)
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncQueueRepository.PendingFor").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (l *localSyncQueueRepository) CountPendingFor(ctx context.Context, ownerID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := l.DB.QueryRowContext(ctx, countPendingSyncEntries, ownerID, models.MaxSyncAttempts).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.CountPendingFor").
			Str("owner_id", ownerID).
			Msg("failed to count pending sync entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (l *localSyncQueueRepository) RecordSuccess(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, deleteSyncEntry, entryID)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.RecordSuccess").
			Str("entry_id", entryID).
			Msg("failed to delete sync entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (l *localSyncQueueRepository) RecordFailure(ctx context.Context, entryID string, at time.Time) error {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, bumpSyncEntryAttempts, at, entryID)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.RecordFailure").
			Str("entry_id", entryID).
			Msg("failed to bump sync entry attempts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (l *localSyncQueueRepository) PurgeDeadLettered(ctx context.Context, ownerID string) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, purgeDeadLetteredEntries, ownerID, models.MaxSyncAttempts)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.PurgeDeadLettered").
			Str("owner_id", ownerID).
			Msg("failed to purge dead-lettered entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return purged, nil
}
