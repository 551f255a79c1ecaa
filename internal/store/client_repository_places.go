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

type localSavedPlaceRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSavedPlaceRepository(db *DB, logger *logger.Logger) LocalSavedPlaceRepository {
	return &localSavedPlaceRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSavedPlaceRepository) Create(ctx context.Context, place models.SavedPlace) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, insertSavedPlace, savedPlaceArgs(place)...)
	if err != nil {
		log.Err(err).
			Str("func", "savedPlaceRepository.Create").
			Str("owner_id", place.OwnerID).
			Str("id", place.ID).
			Msg("failed to insert saved place")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localSavedPlaceRepository) Update(ctx context.Context, ownerID string, id string, update models.SavedPlaceUpdate, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSavedPlaceQuery(ownerID, id, update, now)
	if err != nil {
		log.Err(err).
			Str("func", "savedPlaceRepository.Update").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "savedPlaceRepository.Update").
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

// SoftDelete is idempotent, same as the reminder variant.
func (l *localSavedPlaceRepository) SoftDelete(ctx context.Context, ownerID string, id string, now time.Time) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, softDeleteSavedPlace, now, ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "savedPlaceRepository.SoftDelete").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to soft delete saved place")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localSavedPlaceRepository) GetByID(ctx context.Context, ownerID string, id string) (models.SavedPlace, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, getSavedPlace, ownerID, id)

	place, err := scanSavedPlace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SavedPlace{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "savedPlaceRepository.GetByID").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to scan saved place row")
		return models.SavedPlace{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return place, nil
}

func (l *localSavedPlaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.SavedPlace, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllSavedPlaces, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "savedPlaceRepository.ListByOwner").
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
				Str("func", "savedPlaceRepository.ListByOwner").
				Str("owner_id", ownerID).
				Msg("failed to scan saved place row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		places = append(places, place)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "savedPlaceRepository.ListByOwner").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return places, nil
}

func (l *localSavedPlaceRepository) Upsert(ctx context.Context, place models.SavedPlace) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertSavedPlace, savedPlaceArgs(place)...)
	if err != nil {
		log.Err(err).
			Str("func", "savedPlaceRepository.Upsert").
			Str("owner_id", place.OwnerID).
			Str("id", place.ID).
			Msg("failed to upsert saved place")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func savedPlaceArgs(p models.SavedPlace) []any {
	return []any{
		p.ID,
		p.OwnerID,
		p.Name,
		p.Address,
		p.Latitude,
		p.Longitude,
		p.IsDeleted,
		p.CreatedAt,
		p.UpdatedAt,
	}
}

func scanSavedPlace(row rowScanner) (models.SavedPlace, error) {
	var p models.SavedPlace

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Address,
		&p.Latitude,
		&p.Longitude,
		&p.IsDeleted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	return p, err
}
