package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/akhmetov/go-remind-sync/internal/adapter"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/models"
)

type clientSyncService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	gate       ConnectivityGate
	logger     *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewClientSyncService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, gate ConnectivityGate, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		localStore: localStore,
		adapter:    serverAdapter,
		gate:       gate,
		logger:     logger,
		inFlight:   make(map[string]struct{}),
	}
}

func (s *clientSyncService) ProcessQueue(ctx context.Context, ownerID string) (models.SyncCounts, error) {
	log := logger.FromContext(ctx).With().Str("func", "clientSyncService.ProcessQueue").Logger()

	if models.IsGuestID(ownerID) {
		return models.SyncCounts{}, nil
	}
	if !s.gate.IsConnected(ctx) {
		log.Debug().Str("owner_id", ownerID).Msg("queue processing skipped: offline")
		return models.SyncCounts{}, nil
	}

	entries, err := s.localStore.SyncQueueRepository.PendingFor(ctx, ownerID)
	if err != nil {
		return models.SyncCounts{}, fmt.Errorf("load pending queue entries: %w", err)
	}

	var counts models.SyncCounts
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return counts, err
		}

		if err = s.pushEntry(ctx, entry); err != nil {
			log.Warn().Err(err).
				Str("entry_id", entry.ID).
				Str("entity_type", entry.EntityType).
				Str("operation", entry.Operation).
				Int("attempts", entry.Attempts+1).
				Msg("queue entry push failed")
			if failErr := s.localStore.SyncQueueRepository.RecordFailure(ctx, entry.ID, time.Now().UTC()); failErr != nil {
				return counts, fmt.Errorf("record queue entry failure: %w", failErr)
			}
			counts.Failed++
			continue
		}

		if err = s.localStore.SyncQueueRepository.RecordSuccess(ctx, entry.ID); err != nil {
			return counts, fmt.Errorf("drop pushed queue entry: %w", err)
		}
		if entry.EntityType == models.EntityReminder && entry.Operation != models.OpDelete {
			if err = s.localStore.ReminderRepository.MarkSynced(ctx, ownerID, entry.EntityID, time.Now().UTC()); err != nil {
				log.Warn().Err(err).Str("entity_id", entry.EntityID).Msg("mark reminder synced failed")
			}
		}
		counts.Success++
	}

	return counts, nil
}

// pushEntry replays one queued mutation against the server. Payloads are full
// snapshots, so replaying the same entry twice converges to the same remote
// state.
func (s *clientSyncService) pushEntry(ctx context.Context, entry models.SyncQueueEntry) error {
	if entry.Operation == models.OpDelete {
		switch entry.EntityType {
		case models.EntityReminder:
			return s.adapter.DeleteReminder(ctx, entry.EntityID)
		case models.EntityCategory:
			return s.adapter.DeleteCategory(ctx, entry.EntityID)
		case models.EntitySavedPlace:
			return s.adapter.DeleteSavedPlace(ctx, entry.EntityID)
		default:
			return fmt.Errorf("unknown queue entity type %q", entry.EntityType)
		}
	}

	switch entry.EntityType {
	case models.EntityReminder:
		var reminder models.RemoteReminder
		if err := json.Unmarshal(entry.Payload, &reminder); err != nil {
			return fmt.Errorf("decode reminder payload: %w", err)
		}
		return s.adapter.UpsertReminder(ctx, reminder)
	case models.EntityCategory:
		var category models.RemoteCategory
		if err := json.Unmarshal(entry.Payload, &category); err != nil {
			return fmt.Errorf("decode category payload: %w", err)
		}
		return s.adapter.UpsertCategory(ctx, category)
	case models.EntitySavedPlace:
		var place models.RemoteSavedPlace
		if err := json.Unmarshal(entry.Payload, &place); err != nil {
			return fmt.Errorf("decode saved place payload: %w", err)
		}
		return s.adapter.UpsertSavedPlace(ctx, place)
	default:
		return fmt.Errorf("unknown queue entity type %q", entry.EntityType)
	}
}

// PushAll uploads every local record as a full snapshot. A record the server
// rejects is logged and skipped; one poisoned row must not starve the rest of
// the resync, so only local read failures abort the operation.
func (s *clientSyncService) PushAll(ctx context.Context, ownerID string) (models.EntityCounts, error) {
	log := logger.FromContext(ctx).With().Str("func", "clientSyncService.PushAll").Logger()

	if models.IsGuestID(ownerID) {
		return models.EntityCounts{}, nil
	}
	if !s.gate.IsConnected(ctx) {
		log.Debug().Str("owner_id", ownerID).Msg("push skipped: offline")
		return models.EntityCounts{}, nil
	}

	var counts models.EntityCounts

	reminders, err := s.localStore.ReminderRepository.ListByOwner(ctx, ownerID, models.ListQuery{})
	if err != nil {
		return counts, fmt.Errorf("list local reminders for push: %w", err)
	}
	for _, reminder := range reminders {
		if err = s.adapter.UpsertReminder(ctx, reminder.ToRemote()); err != nil {
			log.Warn().Err(err).Str("reminder_id", reminder.ID).Msg("push reminder failed")
			continue
		}
		if err = s.localStore.ReminderRepository.MarkSynced(ctx, ownerID, reminder.ID, time.Now().UTC()); err != nil {
			log.Warn().Err(err).Str("reminder_id", reminder.ID).Msg("mark reminder synced failed")
		}
		counts.Reminders++
	}

	categories, err := s.localStore.CategoryRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return counts, fmt.Errorf("list local categories for push: %w", err)
	}
	for _, category := range categories {
		if err = s.adapter.UpsertCategory(ctx, category.ToRemote()); err != nil {
			log.Warn().Err(err).Str("category_id", category.ID).Msg("push category failed")
			continue
		}
		counts.Categories++
	}

	places, err := s.localStore.SavedPlaceRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return counts, fmt.Errorf("list local saved places for push: %w", err)
	}
	for _, place := range places {
		if err = s.adapter.UpsertSavedPlace(ctx, place.ToRemote()); err != nil {
			log.Warn().Err(err).Str("place_id", place.ID).Msg("push saved place failed")
			continue
		}
		counts.SavedPlaces++
	}

	return counts, nil
}

func (s *clientSyncService) PullAll(ctx context.Context, ownerID string) (models.EntityCounts, error) {
	if models.IsGuestID(ownerID) {
		return models.EntityCounts{}, nil
	}
	if !s.gate.IsConnected(ctx) {
		logger.FromContext(ctx).Debug().
			Str("func", "clientSyncService.PullAll").
			Str("owner_id", ownerID).
			Msg("pull skipped: offline")
		return models.EntityCounts{}, nil
	}

	var counts models.EntityCounts

	reminders, err := s.adapter.PullReminders(ctx)
	if err != nil {
		return counts, fmt.Errorf("pull reminders: %w", err)
	}
	for _, remote := range reminders {
		if err = s.localStore.ReminderRepository.Upsert(ctx, remote.ToLocal()); err != nil {
			return counts, fmt.Errorf("save pulled reminder %s: %w", remote.ID, err)
		}
		counts.Reminders++
	}

	categories, err := s.adapter.PullCategories(ctx)
	if err != nil {
		return counts, fmt.Errorf("pull categories: %w", err)
	}
	for _, remote := range categories {
		if err = s.localStore.CategoryRepository.Upsert(ctx, remote.ToLocal()); err != nil {
			return counts, fmt.Errorf("save pulled category %s: %w", remote.ID, err)
		}
		counts.Categories++
	}

	places, err := s.adapter.PullSavedPlaces(ctx)
	if err != nil {
		return counts, fmt.Errorf("pull saved places: %w", err)
	}
	for _, remote := range places {
		if err = s.localStore.SavedPlaceRepository.Upsert(ctx, remote.ToLocal()); err != nil {
			return counts, fmt.Errorf("save pulled saved place %s: %w", remote.ID, err)
		}
		counts.SavedPlaces++
	}

	return counts, nil
}

// FullSync pushes before pulling so that queued local changes land on the
// server before the remote snapshot overwrites local rows. Last write wins.
func (s *clientSyncService) FullSync(ctx context.Context, ownerID string) error {
	if models.IsGuestID(ownerID) {
		return nil
	}

	if !s.acquire(ownerID) {
		return ErrSyncInProgress
	}
	defer s.release(ownerID)

	log := logger.FromContext(ctx).With().Str("func", "clientSyncService.FullSync").Logger()

	// The stages quietly no-op on their own when connectivity drops between
	// them; the sequence as a whole only starts if the server is reachable.
	if !s.gate.IsConnected(ctx) {
		return ErrOffline
	}

	counts, err := s.ProcessQueue(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("process queue: %w", err)
	}
	log.Debug().Int("success", counts.Success).Int("failed", counts.Failed).Msg("queue processed")

	pushed, err := s.PushAll(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("push all: %w", err)
	}

	pulled, err := s.PullAll(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("pull all: %w", err)
	}

	log.Info().
		Int("pushed", pushed.Reminders+pushed.Categories+pushed.SavedPlaces).
		Int("pulled", pulled.Reminders+pulled.Categories+pulled.SavedPlaces).
		Msg("full sync finished")

	return nil
}

func (s *clientSyncService) PendingCount(ctx context.Context, ownerID string) (int, error) {
	count, err := s.localStore.SyncQueueRepository.CountPendingFor(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("count pending queue entries: %w", err)
	}
	return count, nil
}

func (s *clientSyncService) PurgeDeadLettered(ctx context.Context, ownerID string) (int64, error) {
	purged, err := s.localStore.SyncQueueRepository.PurgeDeadLettered(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("purge dead-lettered queue entries: %w", err)
	}
	return purged, nil
}

func (s *clientSyncService) acquire(ownerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[ownerID]; busy {
		return false
	}
	s.inFlight[ownerID] = struct{}{}
	return true
}

func (s *clientSyncService) release(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, ownerID)
}
