package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmetov/go-remind-sync/internal/adapter"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/models"
)

func newSyncSvc(reminders *memReminders, queue *memQueue, srv *stubAdapter, gate *stubGate) *clientSyncService {
	storages := newTestStorages(reminders, newMemCategories(), newMemPlaces(), queue, newMemIdentities())
	return NewClientSyncService(storages, srv, gate, logger.Nop()).(*clientSyncService)
}

func queuedReminderEntry(t *testing.T, ownerID, id string) models.SyncQueueEntry {
	t.Helper()
	reminder := timeReminderFixture(ownerID)
	reminder.ID = id
	payload, err := json.Marshal(reminder.ToRemote())
	require.NoError(t, err)

	return models.SyncQueueEntry{
		ID:         models.QueueEntryID(models.EntityReminder, id, time.Now()),
		EntityType: models.EntityReminder,
		EntityID:   id,
		Operation:  models.OpCreate,
		Payload:    payload,
		OwnerID:    ownerID,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestProcessQueue_OfflineIsAQuietSkip(t *testing.T) {
	queue := &memQueue{}
	queue.entries = append(queue.entries, queuedReminderEntry(t, accountOwner, "rem-1"))
	srv := &stubAdapter{}
	svc := newSyncSvc(newMemReminders(), queue, srv, &stubGate{online: false})

	counts, err := svc.ProcessQueue(context.Background(), accountOwner)
	require.NoError(t, err, "being offline is a skip, not a failure")
	assert.Zero(t, counts.Success)
	assert.Zero(t, counts.Failed)
	assert.Empty(t, srv.upsertedReminders)
	require.Len(t, queue.entries, 1, "offline processing must not touch the queue")
	assert.Zero(t, queue.entries[0].Attempts, "a skip must not count as an attempt")
}

func TestProcessQueue_GuestIsNoOp(t *testing.T) {
	gate := &stubGate{online: true}
	svc := newSyncSvc(newMemReminders(), &memQueue{}, &stubAdapter{}, gate)

	counts, err := svc.ProcessQueue(context.Background(), guestOwner)
	require.NoError(t, err)
	assert.Zero(t, counts.Success)
	assert.Zero(t, gate.probes, "guest sync must not even probe connectivity")
}

func TestProcessQueue_DrainsOldestFirst(t *testing.T) {
	reminders := newMemReminders()
	queue := &memQueue{}
	queue.entries = append(queue.entries,
		queuedReminderEntry(t, accountOwner, "rem-1"),
		queuedReminderEntry(t, accountOwner, "rem-2"),
	)
	srv := &stubAdapter{}
	svc := newSyncSvc(reminders, queue, srv, &stubGate{online: true})

	counts, err := svc.ProcessQueue(context.Background(), accountOwner)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Success)
	assert.Zero(t, counts.Failed)
	assert.Empty(t, queue.entries)
	require.Len(t, srv.upsertedReminders, 2)
	assert.Equal(t, "rem-1", srv.upsertedReminders[0].ID)
	assert.Equal(t, []string{"rem-1", "rem-2"}, reminders.synced)
}

func TestProcessQueue_FailureBumpsAttemptsAndContinues(t *testing.T) {
	queue := &memQueue{}
	queue.entries = append(queue.entries, queuedReminderEntry(t, accountOwner, "rem-1"))
	srv := &stubAdapter{upsertErr: adapter.ErrInternalServerError}
	svc := newSyncSvc(newMemReminders(), queue, srv, &stubGate{online: true})

	counts, err := svc.ProcessQueue(context.Background(), accountOwner)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Failed)
	require.Len(t, queue.entries, 1)
	assert.Equal(t, 1, queue.entries[0].Attempts)
	require.NotNil(t, queue.entries[0].LastAttemptAt)
}

func TestProcessQueue_DeadLetterAfterMaxAttempts(t *testing.T) {
	queue := &memQueue{}
	queue.entries = append(queue.entries, queuedReminderEntry(t, accountOwner, "rem-1"))
	srv := &stubAdapter{upsertErr: adapter.ErrInternalServerError}
	svc := newSyncSvc(newMemReminders(), queue, srv, &stubGate{online: true})

	for i := 0; i < models.MaxSyncAttempts; i++ {
		counts, err := svc.ProcessQueue(context.Background(), accountOwner)
		require.NoError(t, err)
		assert.Equal(t, 1, counts.Failed)
	}

	// The entry is dead-lettered now: further passes skip it entirely.
	counts, err := svc.ProcessQueue(context.Background(), accountOwner)
	require.NoError(t, err)
	assert.Zero(t, counts.Failed)
	assert.Zero(t, counts.Success)

	pending, err := svc.PendingCount(context.Background(), accountOwner)
	require.NoError(t, err)
	assert.Zero(t, pending)

	purged, err := svc.PurgeDeadLettered(context.Background(), accountOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
	assert.Empty(t, queue.entries)
}

func TestProcessQueue_DeleteEntry(t *testing.T) {
	queue := &memQueue{}
	queue.entries = append(queue.entries, models.SyncQueueEntry{
		ID:         "del-1",
		EntityType: models.EntityCategory,
		EntityID:   "cat-1",
		Operation:  models.OpDelete,
		OwnerID:    accountOwner,
		CreatedAt:  time.Now().UTC(),
	})
	srv := &stubAdapter{}
	svc := newSyncSvc(newMemReminders(), queue, srv, &stubGate{online: true})

	counts, err := svc.ProcessQueue(context.Background(), accountOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Success)
	assert.Equal(t, []string{"cat-1"}, srv.deletedIDs)
}

func TestPushAll_UploadsLocalSnapshots(t *testing.T) {
	reminders := newMemReminders()
	r := timeReminderFixture(accountOwner)
	r.ID = "rem-1"
	require.NoError(t, reminders.Create(context.Background(), r))
	srv := &stubAdapter{}
	svc := newSyncSvc(reminders, &memQueue{}, srv, &stubGate{online: true})

	counts, err := svc.PushAll(context.Background(), accountOwner)
	require.NoError(t, err)

	assert.Equal(t, 1, counts.Reminders)
	require.Len(t, srv.upsertedReminders, 1)
	assert.Equal(t, []string{"rem-1"}, reminders.synced)
}

func TestPushAll_SkipsRejectedRecordAndKeepsGoing(t *testing.T) {
	reminders := newMemReminders()
	r := timeReminderFixture(accountOwner)
	r.ID = "rem-1"
	require.NoError(t, reminders.Create(context.Background(), r))

	categories := newMemCategories()
	require.NoError(t, categories.Create(context.Background(), models.Category{ID: "cat-1", OwnerID: accountOwner, Name: "errands"}))

	srv := &stubAdapter{upsertReminderErr: adapter.ErrInternalServerError}
	storages := newTestStorages(reminders, categories, newMemPlaces(), &memQueue{}, newMemIdentities())
	svc := NewClientSyncService(storages, srv, &stubGate{online: true}, logger.Nop()).(*clientSyncService)

	counts, err := svc.PushAll(context.Background(), accountOwner)
	require.NoError(t, err, "a rejected record must not abort the resync")

	assert.Zero(t, counts.Reminders)
	assert.Empty(t, reminders.synced, "a rejected reminder must not be marked synced")
	assert.Equal(t, 1, counts.Categories, "later entity types still upload")
	require.Len(t, srv.upsertedCats, 1)
}

func TestPushAll_OfflineIsAQuietSkip(t *testing.T) {
	reminders := newMemReminders()
	r := timeReminderFixture(accountOwner)
	r.ID = "rem-1"
	require.NoError(t, reminders.Create(context.Background(), r))
	srv := &stubAdapter{}
	svc := newSyncSvc(reminders, &memQueue{}, srv, &stubGate{online: false})

	counts, err := svc.PushAll(context.Background(), accountOwner)
	require.NoError(t, err)
	assert.Zero(t, counts.Reminders)
	assert.Empty(t, srv.upsertedReminders)
}

func TestPullAll_OfflineIsAQuietSkip(t *testing.T) {
	reminders := newMemReminders()
	srv := &stubAdapter{pullReminders: []models.RemoteReminder{timeReminderFixture(accountOwner).ToRemote()}}
	svc := newSyncSvc(reminders, &memQueue{}, srv, &stubGate{online: false})

	counts, err := svc.PullAll(context.Background(), accountOwner)
	require.NoError(t, err)
	assert.Zero(t, counts.Reminders)
	assert.Empty(t, reminders.byID)
}

func TestPullAll_RemoteWinsAndTombstonesPropagate(t *testing.T) {
	reminders := newMemReminders()
	stale := timeReminderFixture(accountOwner)
	stale.ID = "rem-1"
	stale.Title = "old local title"
	require.NoError(t, reminders.Create(context.Background(), stale))

	remote := timeReminderFixture(accountOwner)
	remote.ID = "rem-1"
	remote.Title = "server title"
	tombstoned := timeReminderFixture(accountOwner)
	tombstoned.ID = "rem-2"
	tombstoned.IsDeleted = true

	srv := &stubAdapter{pullReminders: []models.RemoteReminder{remote.ToRemote(), tombstoned.ToRemote()}}
	svc := newSyncSvc(reminders, &memQueue{}, srv, &stubGate{online: true})

	counts, err := svc.PullAll(context.Background(), accountOwner)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Reminders)
	assert.Equal(t, "server title", reminders.byID["rem-1"].Title)
	assert.True(t, reminders.byID["rem-2"].IsDeleted)
}

func TestFullSync_SecondCallForSameOwnerRejected(t *testing.T) {
	svc := newSyncSvc(newMemReminders(), &memQueue{}, &stubAdapter{}, &stubGate{online: true})

	require.True(t, svc.acquire(accountOwner))
	err := svc.FullSync(context.Background(), accountOwner)
	require.ErrorIs(t, err, ErrSyncInProgress)

	svc.release(accountOwner)
	require.NoError(t, svc.FullSync(context.Background(), accountOwner))
}

func TestFullSync_DifferentOwnersRunConcurrently(t *testing.T) {
	svc := newSyncSvc(newMemReminders(), &memQueue{}, &stubAdapter{}, &stubGate{online: true})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	owners := []string{"user-1", "user-2"}
	for i, owner := range owners {
		wg.Add(1)
		go func(i int, owner string) {
			defer wg.Done()
			errs[i] = svc.FullSync(context.Background(), owner)
		}(i, owner)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
}

func TestFullSync_GuestIsNoOp(t *testing.T) {
	gate := &stubGate{online: false}
	svc := newSyncSvc(newMemReminders(), &memQueue{}, &stubAdapter{}, gate)

	require.NoError(t, svc.FullSync(context.Background(), guestOwner))
	assert.Zero(t, gate.probes)
}

func TestFullSync_Offline(t *testing.T) {
	svc := newSyncSvc(newMemReminders(), &memQueue{}, &stubAdapter{}, &stubGate{online: false})

	err := svc.FullSync(context.Background(), accountOwner)
	require.ErrorIs(t, err, ErrOffline)
}

func TestProcessQueue_UnknownEntityTypeGoesToDeadLetter(t *testing.T) {
	queue := &memQueue{}
	queue.entries = append(queue.entries, models.SyncQueueEntry{
		ID:         "weird-1",
		EntityType: "unknown",
		EntityID:   "x",
		Operation:  models.OpCreate,
		Payload:    json.RawMessage(`{}`),
		OwnerID:    accountOwner,
		CreatedAt:  time.Now().UTC(),
	})
	svc := newSyncSvc(newMemReminders(), queue, &stubAdapter{}, &stubGate{online: true})

	counts, err := svc.ProcessQueue(context.Background(), accountOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Failed)
	assert.Equal(t, 1, queue.entries[0].Attempts)
}

func TestPushEntry_CorruptPayload(t *testing.T) {
	svc := newSyncSvc(newMemReminders(), &memQueue{}, &stubAdapter{}, &stubGate{online: true})

	err := svc.pushEntry(context.Background(), models.SyncQueueEntry{
		EntityType: models.EntityReminder,
		EntityID:   "rem-1",
		Operation:  models.OpUpdate,
		Payload:    json.RawMessage(`{not json`),
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, adapter.ErrInternalServerError))
}
