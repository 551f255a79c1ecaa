package service

import (
	"context"
	"fmt"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/models"
)

type recordService struct {
	records store.RemoteRecordRepository
	logger  *logger.Logger
}

// NewRecordService constructs the server-side record store facade.
func NewRecordService(records store.RemoteRecordRepository, logger *logger.Logger) RecordService {
	return &recordService{records: records, logger: logger}
}

func (s *recordService) UpsertReminder(ctx context.Context, ownerID string, remote models.RemoteReminder) error {
	reminder := remote.ToLocal()
	// The authenticated account owns whatever it uploads. A forged owner id
	// in the payload is overwritten here and the repository upsert is
	// additionally owner-scoped.
	reminder.OwnerID = ownerID

	if err := s.records.UpsertReminder(ctx, reminder); err != nil {
		return fmt.Errorf("upsert reminder %s: %w", reminder.ID, err)
	}
	return nil
}

func (s *recordService) DeleteReminder(ctx context.Context, ownerID string, id string) error {
	if err := s.records.DeleteReminder(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete reminder %s: %w", id, err)
	}
	return nil
}

func (s *recordService) ListReminders(ctx context.Context, ownerID string) ([]models.RemoteReminder, error) {
	reminders, err := s.records.ListReminders(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	remotes := make([]models.RemoteReminder, 0, len(reminders))
	for _, reminder := range reminders {
		remotes = append(remotes, reminder.ToRemote())
	}
	return remotes, nil
}

func (s *recordService) UpsertCategory(ctx context.Context, ownerID string, remote models.RemoteCategory) error {
	category := remote.ToLocal()
	category.OwnerID = ownerID

	if err := s.records.UpsertCategory(ctx, category); err != nil {
		return fmt.Errorf("upsert category %s: %w", category.ID, err)
	}
	return nil
}

func (s *recordService) DeleteCategory(ctx context.Context, ownerID string, id string) error {
	if err := s.records.DeleteCategory(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

func (s *recordService) ListCategories(ctx context.Context, ownerID string) ([]models.RemoteCategory, error) {
	categories, err := s.records.ListCategories(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	remotes := make([]models.RemoteCategory, 0, len(categories))
	for _, category := range categories {
		remotes = append(remotes, category.ToRemote())
	}
	return remotes, nil
}

func (s *recordService) UpsertSavedPlace(ctx context.Context, ownerID string, remote models.RemoteSavedPlace) error {
	place := remote.ToLocal()
	place.OwnerID = ownerID

	if err := s.records.UpsertSavedPlace(ctx, place); err != nil {
		return fmt.Errorf("upsert saved place %s: %w", place.ID, err)
	}
	return nil
}

func (s *recordService) DeleteSavedPlace(ctx context.Context, ownerID string, id string) error {
	if err := s.records.DeleteSavedPlace(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete saved place %s: %w", id, err)
	}
	return nil
}

func (s *recordService) ListSavedPlaces(ctx context.Context, ownerID string) ([]models.RemoteSavedPlace, error) {
	places, err := s.records.ListSavedPlaces(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list saved places: %w", err)
	}

	remotes := make([]models.RemoteSavedPlace, 0, len(places))
	for _, place := range places {
		remotes = append(remotes, place.ToRemote())
	}
	return remotes, nil
}
