package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/models"
)

func TestRecordService_UpsertStampsAuthenticatedOwner(t *testing.T) {
	records := newMemRemoteRecords()
	svc := NewRecordService(records, logger.Nop())

	forged := timeReminderFixture("someone-else")
	forged.ID = "rem-1"

	require.NoError(t, svc.UpsertReminder(context.Background(), accountOwner, forged.ToRemote()))

	stored := records.reminders["rem-1"]
	assert.Equal(t, accountOwner, stored.OwnerID, "payload owner id must be replaced by the token's")
}

func TestRecordService_DeleteTombstones(t *testing.T) {
	records := newMemRemoteRecords()
	svc := NewRecordService(records, logger.Nop())

	r := timeReminderFixture(accountOwner)
	r.ID = "rem-1"
	require.NoError(t, svc.UpsertReminder(context.Background(), accountOwner, r.ToRemote()))
	require.NoError(t, svc.DeleteReminder(context.Background(), accountOwner, "rem-1"))

	assert.True(t, records.reminders["rem-1"].IsDeleted)

	listed, err := svc.ListReminders(context.Background(), accountOwner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsDeleted, "tombstones must be visible to pulling clients")
}

func TestRecordService_ListScopedToOwner(t *testing.T) {
	records := newMemRemoteRecords()
	svc := NewRecordService(records, logger.Nop())

	mine := timeReminderFixture(accountOwner)
	mine.ID = "rem-1"
	require.NoError(t, svc.UpsertReminder(context.Background(), accountOwner, mine.ToRemote()))

	theirs := timeReminderFixture("other-user")
	theirs.ID = "rem-2"
	require.NoError(t, svc.UpsertReminder(context.Background(), "other-user", theirs.ToRemote()))

	listed, err := svc.ListReminders(context.Background(), accountOwner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "rem-1", listed[0].ID)
}

func TestRecordService_CategoryAndPlaceRoundTrip(t *testing.T) {
	records := newMemRemoteRecords()
	svc := NewRecordService(records, logger.Nop())

	cat := models.Category{ID: "cat-1", OwnerID: accountOwner, Name: "errands"}
	require.NoError(t, svc.UpsertCategory(context.Background(), accountOwner, cat.ToRemote()))

	place := models.SavedPlace{ID: "place-1", OwnerID: accountOwner, Name: "office", Latitude: 1, Longitude: 2}
	require.NoError(t, svc.UpsertSavedPlace(context.Background(), accountOwner, place.ToRemote()))

	cats, err := svc.ListCategories(context.Background(), accountOwner)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "errands", cats[0].Name)

	places, err := svc.ListSavedPlaces(context.Background(), accountOwner)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "office", places[0].Name)
}
