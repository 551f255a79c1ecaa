package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/models"
)

type localIdentityRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalIdentityRepository(db *DB, logger *logger.Logger) LocalIdentityRepository {
	return &localIdentityRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localIdentityRepository) Save(ctx context.Context, identity models.Identity) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, insertIdentity,
		identity.ID,
		identity.IsGuest,
		identity.Email,
		identity.DisplayName,
		identity.IsPremium,
		identity.IsCurrent,
		identity.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.Save").
			Str("id", identity.ID).
			Msg("failed to insert identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localIdentityRepository) GetByID(ctx context.Context, id string) (models.Identity, error) {
	return l.getOne(ctx, "identityRepository.GetByID", getIdentityByID, id)
}

func (l *localIdentityRepository) GetCurrent(ctx context.Context) (models.Identity, error) {
	return l.getOne(ctx, "identityRepository.GetCurrent", getCurrentIdentity)
}

func (l *localIdentityRepository) GetGuest(ctx context.Context) (models.Identity, error) {
	return l.getOne(ctx, "identityRepository.GetGuest", getGuestIdentity)
}

func (l *localIdentityRepository) getOne(ctx context.Context, caller, query string, args ...any) (models.Identity, error) {
	log := logger.FromContext(ctx)

	var identity models.Identity
	err := l.DB.QueryRowContext(ctx, query, args...).Scan(
		&identity.ID,
		&identity.IsGuest,
		&identity.Email,
		&identity.DisplayName,
		&identity.IsPremium,
		&identity.IsCurrent,
		&identity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, ErrIdentityNotFound
		}
		log.Err(err).
			Str("func", caller).
			Msg("failed to scan identity row")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return identity, nil
}

// SetCurrent marks one identity as active in a transaction, clearing the
// previous holder first so the is_current flag stays unique.
func (l *localIdentityRepository) SetCurrent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.SetCurrent").
			Str("id", id).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearCurrentIdentity); err != nil {
		log.Err(err).
			Str("func", "identityRepository.SetCurrent").
			Str("id", id).
			Msg("failed to clear current identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, setCurrentIdentity, id)
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.SetCurrent").
			Str("id", id).
			Msg("failed to set current identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrIdentityNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "identityRepository.SetCurrent").
			Str("id", id).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localIdentityRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, deleteIdentity, id)
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.Delete").
			Str("id", id).
			Msg("failed to delete identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// MigrateOwner hands every record and queue entry owned by the guest to the
// account identity in one transaction. The account row is inserted and made
// current, and the guest row is removed; a failure at any step leaves the
// guest's data untouched.
func (l *localIdentityRepository) MigrateOwner(ctx context.Context, guestID string, account models.Identity) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.MigrateOwner").
			Str("guest_id", guestID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertIdentity,
		account.ID,
		account.IsGuest,
		account.Email,
		account.DisplayName,
		account.IsPremium,
		false,
		account.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "identityRepository.MigrateOwner").
			Str("account_id", account.ID).
			Msg("failed to insert account identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	reassignments := []string{
		reassignRemindersOwner,
		reassignCategoriesOwner,
		reassignSavedPlacesOwner,
		reassignQueueOwner,
	}
	for _, query := range reassignments {
		if _, err := tx.ExecContext(ctx, query, account.ID, guestID); err != nil {
			log.Err(err).
				Str("func", "identityRepository.MigrateOwner").
				Str("guest_id", guestID).
				Str("account_id", account.ID).
				Msg("failed to reassign owner")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if _, err := tx.ExecContext(ctx, deleteIdentity, guestID); err != nil {
		log.Err(err).
			Str("func", "identityRepository.MigrateOwner").
			Str("guest_id", guestID).
			Msg("failed to delete guest identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, clearCurrentIdentity); err != nil {
		log.Err(err).
			Str("func", "identityRepository.MigrateOwner").
			Str("account_id", account.ID).
			Msg("failed to clear current identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err := tx.ExecContext(ctx, setCurrentIdentity, account.ID); err != nil {
		log.Err(err).
			Str("func", "identityRepository.MigrateOwner").
			Str("account_id", account.ID).
			Msg("failed to set current identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "identityRepository.MigrateOwner").
			Str("guest_id", guestID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
