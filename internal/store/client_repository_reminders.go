package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/models"
)

type localReminderRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalReminderRepository(db *DB, logger *logger.Logger) LocalReminderRepository {
	return &localReminderRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localReminderRepository) Create(ctx context.Context, reminder models.Reminder) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, insertReminder, reminderArgs(reminder)...)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.Create").
			Str("owner_id", reminder.OwnerID).
			Str("id", reminder.ID).
			Msg("failed to insert reminder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localReminderRepository) Update(ctx context.Context, ownerID string, id string, update models.ReminderUpdate, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateReminderQuery(ownerID, id, update, now)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.Update").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.Update").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// SoftDelete is idempotent: deleting an absent or already deleted reminder
// succeeds without effect.
func (l *localReminderRepository) SoftDelete(ctx context.Context, ownerID string, id string, now time.Time) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, softDeleteReminder, now, ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.SoftDelete").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to soft delete reminder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localReminderRepository) GetByID(ctx context.Context, ownerID string, id string) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetReminderQuery(ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.GetByID").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to build select query")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := l.DB.QueryRowContext(ctx, query, args...)

	reminder, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "reminderRepository.GetByID").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to scan reminder row")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return reminder, nil
}

func (l *localReminderRepository) ListByOwner(ctx context.Context, ownerID string, listQuery models.ListQuery) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRemindersQuery(ownerID, listQuery)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.ListByOwner").
			Str("owner_id", ownerID).
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.ListByOwner").
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
				Str("func", "reminderRepository.ListByOwner").
				Str("owner_id", ownerID).
				Msg("failed to scan reminder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		reminders = append(reminders, reminder)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "reminderRepository.ListByOwner").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reminders, nil
}

// Upsert replaces the stored row wholesale. It is the pull-reconciliation
// write path, where the remote copy wins unconditionally.
func (l *localReminderRepository) Upsert(ctx context.Context, reminder models.Reminder) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertReminder, reminderArgs(reminder)...)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.Upsert").
			Str("owner_id", reminder.OwnerID).
			Str("id", reminder.ID).
			Msg("failed to upsert reminder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localReminderRepository) MarkSynced(ctx context.Context, ownerID string, id string, at time.Time) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, markReminderSynced, at, ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "reminderRepository.MarkSynced").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to mark reminder synced")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func reminderArgs(r models.Reminder) []any {
	return []any{
		r.ID,
		r.OwnerID,
		r.Title,
		r.Notes,
		r.Type,
		r.TriggerAt,
		r.RecurrenceRule,
		r.Latitude,
		r.Longitude,
		r.Radius,
		r.TriggerOn,
		r.IsRecurringLocation,
		r.DeliveryMethod,
		r.DeliveryPayload,
		r.CategoryID,
		r.Priority,
		r.IsCompleted,
		r.IsActive,
		r.CompletedAt,
		r.NotificationID,
		r.GeofenceID,
		r.SyncedAt,
		r.IsDeleted,
		r.CreatedAt,
		r.UpdatedAt,
	}
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var r models.Reminder

	err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.Title,
		&r.Notes,
		&r.Type,
		&r.TriggerAt,
		&r.RecurrenceRule,
		&r.Latitude,
		&r.Longitude,
		&r.Radius,
		&r.TriggerOn,
		&r.IsRecurringLocation,
		&r.DeliveryMethod,
		&r.DeliveryPayload,
		&r.CategoryID,
		&r.Priority,
		&r.IsCompleted,
		&r.IsActive,
		&r.CompletedAt,
		&r.NotificationID,
		&r.GeofenceID,
		&r.SyncedAt,
		&r.IsDeleted,
		&r.CreatedAt,
		&r.UpdatedAt,
	)

	return r, err
}
