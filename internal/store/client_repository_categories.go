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

type localCategoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalCategoryRepository(db *DB, logger *logger.Logger) LocalCategoryRepository {
	return &localCategoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localCategoryRepository) Create(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, insertCategory, categoryArgs(category)...)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Create").
			Str("owner_id", category.OwnerID).
			Str("id", category.ID).
			Msg("failed to insert category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localCategoryRepository) Update(ctx context.Context, ownerID string, id string, update models.CategoryUpdate, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCategoryQuery(ownerID, id, update, now)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Update").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Update").
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
func (l *localCategoryRepository) SoftDelete(ctx context.Context, ownerID string, id string, now time.Time) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, softDeleteCategory, now, ownerID, id)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.SoftDelete").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to soft delete category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localCategoryRepository) GetByID(ctx context.Context, ownerID string, id string) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, getCategory, ownerID, id)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "categoryRepository.GetByID").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to scan category row")
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return category, nil
}

func (l *localCategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCategories, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.ListByOwner").
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
				Str("func", "categoryRepository.ListByOwner").
				Str("owner_id", ownerID).
				Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "categoryRepository.ListByOwner").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

func (l *localCategoryRepository) Upsert(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertCategory, categoryArgs(category)...)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Upsert").
			Str("owner_id", category.OwnerID).
			Str("id", category.ID).
			Msg("failed to upsert category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func categoryArgs(c models.Category) []any {
	return []any{
		c.ID,
		c.OwnerID,
		c.Name,
		c.Color,
		c.Icon,
		c.IsDeleted,
		c.CreatedAt,
		c.UpdatedAt,
	}
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category

	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Color,
		&c.Icon,
		&c.IsDeleted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	return c, err
}
