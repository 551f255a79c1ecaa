package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/internal/validators"
	"github.com/akhmetov/go-remind-sync/models"
)

// queueFeeder records outbound mutations for sync-eligible owners. Guest
// mutations stay local: the queue never sees them, so nothing of a guest can
// cross the network boundary.
type queueFeeder struct {
	queue  store.LocalSyncQueueRepository
	logger *logger.Logger
}

func (q *queueFeeder) enqueue(ctx context.Context, ownerID, entityType, operation, entityID string, snapshot any) error {
	if models.IsGuestID(ownerID) {
		logger.FromContext(ctx).Debug().
			Str("func", "queueFeeder.enqueue").
			Str("entity_id", entityID).
			Msg("guest mutation kept local")
		return nil
	}

	var payload json.RawMessage
	if snapshot != nil {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("marshal queue payload: %w", err)
		}
		payload = data
	}

	now := time.Now().UTC()
	entry := models.SyncQueueEntry{
		ID:         models.QueueEntryID(entityType, entityID, now),
		EntityType: entityType,
		EntityID:   entityID,
		Operation:  operation,
		Payload:    payload,
		OwnerID:    ownerID,
		CreatedAt:  now,
	}

	if err := q.queue.Enqueue(ctx, entry); err != nil {
		return fmt.Errorf("enqueue %s %s: %w", operation, entityType, err)
	}

	return nil
}

type clientReminderService struct {
	queueFeeder
	reminders store.LocalReminderRepository
	validator validators.Validator
	ids       IDGenerator
}

func NewClientReminderService(storages *store.ClientStorages, validator validators.Validator, ids IDGenerator, logger *logger.Logger) ClientReminderService {
	return &clientReminderService{
		queueFeeder: queueFeeder{queue: storages.SyncQueueRepository, logger: logger},
		reminders:   storages.ReminderRepository,
		validator:   validator,
		ids:         ids,
	}
}

func (s *clientReminderService) Create(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	now := time.Now().UTC()

	if reminder.ID == "" {
		reminder.ID = s.ids.Generate()
	}
	if reminder.Priority == "" {
		reminder.Priority = models.PriorityMedium
	}
	if reminder.DeliveryMethod == "" {
		reminder.DeliveryMethod = models.DeliveryNotification
	}
	if !reminder.IsCompleted {
		reminder.IsActive = true
	}
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	if err := s.validator.Validate(ctx, reminder); err != nil {
		return models.Reminder{}, fmt.Errorf("validate reminder: %w", err)
	}

	if err := s.reminders.Create(ctx, reminder); err != nil {
		return models.Reminder{}, fmt.Errorf("save created reminder to local store: %w", err)
	}

	if err := s.enqueue(ctx, reminder.OwnerID, models.EntityReminder, models.OpCreate, reminder.ID, reminder.ToRemote()); err != nil {
		return models.Reminder{}, err
	}

	return reminder, nil
}

func (s *clientReminderService) Update(ctx context.Context, ownerID string, id string, update models.ReminderUpdate) (models.Reminder, error) {
	now := time.Now().UTC()

	if err := s.reminders.Update(ctx, ownerID, id, update, now); err != nil {
		return models.Reminder{}, fmt.Errorf("update local reminder: %w", err)
	}

	reminder, err := s.reminders.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("reload updated reminder: %w", err)
	}

	if err := s.validator.Validate(ctx, reminder); err != nil {
		return models.Reminder{}, fmt.Errorf("validate updated reminder: %w", err)
	}

	if err := s.enqueue(ctx, ownerID, models.EntityReminder, models.OpUpdate, id, reminder.ToRemote()); err != nil {
		return models.Reminder{}, err
	}

	return reminder, nil
}

func (s *clientReminderService) Complete(ctx context.Context, ownerID string, id string) (models.Reminder, error) {
	now := time.Now().UTC()
	done := true
	inactive := false

	return s.Update(ctx, ownerID, id, models.ReminderUpdate{
		IsCompleted: &done,
		IsActive:    &inactive,
		CompletedAt: &now,
	})
}

func (s *clientReminderService) Delete(ctx context.Context, ownerID string, id string) error {
	now := time.Now().UTC()

	if err := s.reminders.SoftDelete(ctx, ownerID, id, now); err != nil {
		return fmt.Errorf("soft delete local reminder: %w", err)
	}

	return s.enqueue(ctx, ownerID, models.EntityReminder, models.OpDelete, id, nil)
}

func (s *clientReminderService) GetByID(ctx context.Context, ownerID string, id string) (models.Reminder, error) {
	reminder, err := s.reminders.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("get local reminder: %w", err)
	}
	return reminder, nil
}

func (s *clientReminderService) List(ctx context.Context, ownerID string, query models.ListQuery) ([]models.Reminder, error) {
	reminders, err := s.reminders.ListByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("list local reminders: %w", err)
	}
	return reminders, nil
}

type clientCategoryService struct {
	queueFeeder
	categories store.LocalCategoryRepository
	validator  validators.Validator
	ids        IDGenerator
}

func NewClientCategoryService(storages *store.ClientStorages, validator validators.Validator, ids IDGenerator, logger *logger.Logger) ClientCategoryService {
	return &clientCategoryService{
		queueFeeder: queueFeeder{queue: storages.SyncQueueRepository, logger: logger},
		categories:  storages.CategoryRepository,
		validator:   validator,
		ids:         ids,
	}
}

func (s *clientCategoryService) Create(ctx context.Context, category models.Category) (models.Category, error) {
	now := time.Now().UTC()

	if category.ID == "" {
		category.ID = s.ids.Generate()
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("validate category: %w", err)
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("save created category to local store: %w", err)
	}

	if err := s.enqueue(ctx, category.OwnerID, models.EntityCategory, models.OpCreate, category.ID, category.ToRemote()); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (s *clientCategoryService) Update(ctx context.Context, ownerID string, id string, update models.CategoryUpdate) (models.Category, error) {
	now := time.Now().UTC()

	if err := s.categories.Update(ctx, ownerID, id, update, now); err != nil {
		return models.Category{}, fmt.Errorf("update local category: %w", err)
	}

	category, err := s.categories.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.Category{}, fmt.Errorf("reload updated category: %w", err)
	}

	if err := s.enqueue(ctx, ownerID, models.EntityCategory, models.OpUpdate, id, category.ToRemote()); err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (s *clientCategoryService) Delete(ctx context.Context, ownerID string, id string) error {
	now := time.Now().UTC()

	if err := s.categories.SoftDelete(ctx, ownerID, id, now); err != nil {
		return fmt.Errorf("soft delete local category: %w", err)
	}

	return s.enqueue(ctx, ownerID, models.EntityCategory, models.OpDelete, id, nil)
}

func (s *clientCategoryService) GetByID(ctx context.Context, ownerID string, id string) (models.Category, error) {
	category, err := s.categories.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.Category{}, fmt.Errorf("get local category: %w", err)
	}
	return category, nil
}

func (s *clientCategoryService) List(ctx context.Context, ownerID string) ([]models.Category, error) {
	categories, err := s.categories.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list local categories: %w", err)
	}
	return categories, nil
}

type clientSavedPlaceService struct {
	queueFeeder
	places    store.LocalSavedPlaceRepository
	validator validators.Validator
	ids       IDGenerator
}

func NewClientSavedPlaceService(storages *store.ClientStorages, validator validators.Validator, ids IDGenerator, logger *logger.Logger) ClientSavedPlaceService {
	return &clientSavedPlaceService{
		queueFeeder: queueFeeder{queue: storages.SyncQueueRepository, logger: logger},
		places:      storages.SavedPlaceRepository,
		validator:   validator,
		ids:         ids,
	}
}

func (s *clientSavedPlaceService) Create(ctx context.Context, place models.SavedPlace) (models.SavedPlace, error) {
	now := time.Now().UTC()

	if place.ID == "" {
		place.ID = s.ids.Generate()
	}
	place.CreatedAt = now
	place.UpdatedAt = now

	if err := s.validator.Validate(ctx, place); err != nil {
		return models.SavedPlace{}, fmt.Errorf("validate saved place: %w", err)
	}

	if err := s.places.Create(ctx, place); err != nil {
		return models.SavedPlace{}, fmt.Errorf("save created place to local store: %w", err)
	}

	if err := s.enqueue(ctx, place.OwnerID, models.EntitySavedPlace, models.OpCreate, place.ID, place.ToRemote()); err != nil {
		return models.SavedPlace{}, err
	}

	return place, nil
}

func (s *clientSavedPlaceService) Update(ctx context.Context, ownerID string, id string, update models.SavedPlaceUpdate) (models.SavedPlace, error) {
	now := time.Now().UTC()

	if err := s.places.Update(ctx, ownerID, id, update, now); err != nil {
		return models.SavedPlace{}, fmt.Errorf("update local saved place: %w", err)
	}

	place, err := s.places.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.SavedPlace{}, fmt.Errorf("reload updated saved place: %w", err)
	}

	if err := s.validator.Validate(ctx, place); err != nil {
		return models.SavedPlace{}, fmt.Errorf("validate updated saved place: %w", err)
	}

	if err := s.enqueue(ctx, ownerID, models.EntitySavedPlace, models.OpUpdate, id, place.ToRemote()); err != nil {
		return models.SavedPlace{}, err
	}

	return place, nil
}

func (s *clientSavedPlaceService) Delete(ctx context.Context, ownerID string, id string) error {
	now := time.Now().UTC()

	if err := s.places.SoftDelete(ctx, ownerID, id, now); err != nil {
		return fmt.Errorf("soft delete local saved place: %w", err)
	}

	return s.enqueue(ctx, ownerID, models.EntitySavedPlace, models.OpDelete, id, nil)
}

func (s *clientSavedPlaceService) GetByID(ctx context.Context, ownerID string, id string) (models.SavedPlace, error) {
	place, err := s.places.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.SavedPlace{}, fmt.Errorf("get local saved place: %w", err)
	}
	return place, nil
}

func (s *clientSavedPlaceService) List(ctx context.Context, ownerID string) ([]models.SavedPlace, error) {
	places, err := s.places.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list local saved places: %w", err)
	}
	return places, nil
}
