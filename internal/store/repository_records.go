package store

import (
	"context"
	"fmt"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/models"
)

// remoteRecordRepository is the PostgreSQL-backed implementation of
// [RemoteRecordRepository].
type remoteRecordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRemoteRecordRepository constructs a [RemoteRecordRepository] backed by
// the provided database connection and logger.
func NewRemoteRecordRepository(db *DB, logger *logger.Logger) RemoteRecordRepository {
	logger.Debug().Msg("creating remote record repository")
	return &remoteRecordRepository{
		db:     db,
		logger: logger,
	}
}

func (r *remoteRecordRepository) UpsertReminder(ctx context.Context, reminder models.Reminder) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertRemoteReminder, reminderArgs(reminder)...)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.UpsertReminder").
			Str("owner_id", reminder.OwnerID).
			Str("id", reminder.ID).
			Msg("failed to upsert reminder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *remoteRecordRepository) DeleteReminder(ctx context.Context, ownerID string, id string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteRemoteReminder, ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.DeleteReminder").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to delete reminder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *remoteRecordRepository) ListReminders(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllRemoteReminders, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.ListReminders").
			Str("owner_id", ownerID).
			Msg("failed to query reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var reminders []models.Reminder

	for rows.Next() {
		reminder, scanErr := scanReminder(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*remoteRecordRepository.ListReminders").
				Str("owner_id", ownerID).
				Msg("failed to scan reminder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		reminders = append(reminders, reminder)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*remoteRecordRepository.ListReminders").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reminders, nil
}

func (r *remoteRecordRepository) UpsertCategory(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertRemoteCategory, categoryArgs(category)...)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.UpsertCategory").
			Str("owner_id", category.OwnerID).
			Str("id", category.ID).
			Msg("failed to upsert category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *remoteRecordRepository) DeleteCategory(ctx context.Context, ownerID string, id string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteRemoteCategory, ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.DeleteCategory").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *remoteRecordRepository) ListCategories(ctx context.Context, ownerID string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllRemoteCategories, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.ListCategories").
			Str("owner_id", ownerID).
			Msg("failed to query categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.Category

	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*remoteRecordRepository.ListCategories").
				Str("owner_id", ownerID).
				Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*remoteRecordRepository.ListCategories").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

func (r *remoteRecordRepository) UpsertSavedPlace(ctx context.Context, place models.SavedPlace) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertRemoteSavedPlace, savedPlaceArgs(place)...)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.UpsertSavedPlace").
			Str("owner_id", place.OwnerID).
			Str("id", place.ID).
			Msg("failed to upsert saved place")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *remoteRecordRepository) DeleteSavedPlace(ctx context.Context, ownerID string, id string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteRemoteSavedPlace, ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.DeleteSavedPlace").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to delete saved place")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *remoteRecordRepository) ListSavedPlaces(ctx context.Context, ownerID string) ([]models.SavedPlace, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllRemoteSavedPlaces, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.ListSavedPlaces").
			Str("owner_id", ownerID).
			Msg("failed to query saved places")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var places []models.SavedPlace

	for rows.Next() {
		place, scanErr := scanSavedPlace(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*remoteRecordRepository.ListSavedPlaces").
				Str("owner_id", ownerID).
				Msg("failed to scan saved place row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		places = append(places, place)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*remoteRecordRepository.ListSavedPlaces").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return places, nil
}
