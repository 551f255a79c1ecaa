package store

import (
	"context"
	"time"

	"github.com/akhmetov/go-remind-sync/models"
)

// LocalReminderRepository is the low-level local reminder repository.
type LocalReminderRepository interface {
	Create(ctx context.Context, reminder models.Reminder) error
	Update(ctx context.Context, ownerID string, id string, update models.ReminderUpdate, now time.Time) error
	SoftDelete(ctx context.Context, ownerID string, id string, now time.Time) error
	GetByID(ctx context.Context, ownerID string, id string) (models.Reminder, error)
	ListByOwner(ctx context.Context, ownerID string, query models.ListQuery) ([]models.Reminder, error)
	Upsert(ctx context.Context, reminder models.Reminder) error
	MarkSynced(ctx context.Context, ownerID string, id string, at time.Time) error
}

// LocalCategoryRepository is the low-level local category repository.
type LocalCategoryRepository interface {
	Create(ctx context.Context, category models.Category) error
	Update(ctx context.Context, ownerID string, id string, update models.CategoryUpdate, now time.Time) error
	SoftDelete(ctx context.Context, ownerID string, id string, now time.Time) error
	GetByID(ctx context.Context, ownerID string, id string) (models.Category, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Category, error)
	Upsert(ctx context.Context, category models.Category) error
}

// LocalSavedPlaceRepository is the low-level local saved place repository.
type LocalSavedPlaceRepository interface {
	Create(ctx context.Context, place models.SavedPlace) error
	Update(ctx context.Context, ownerID string, id string, update models.SavedPlaceUpdate, now time.Time) error
	SoftDelete(ctx context.Context, ownerID string, id string, now time.Time) error
	GetByID(ctx context.Context, ownerID string, id string) (models.SavedPlace, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.SavedPlace, error)
	Upsert(ctx context.Context, place models.SavedPlace) error
}

// LocalSyncQueueRepository is the low-level outbound sync queue repository.
type LocalSyncQueueRepository interface {
	Enqueue(ctx context.Context, entry models.SyncQueueEntry) error
	PendingFor(ctx context.Context, ownerID string) ([]models.SyncQueueEntry, error)
	CountPendingFor(ctx context.Context, ownerID string) (int, error)
	RecordSuccess(ctx context.Context, entryID string) error
	RecordFailure(ctx context.Context, entryID string, at time.Time) error
	PurgeDeadLettered(ctx context.Context, ownerID string) (int64, error)
}

// LocalIdentityRepository is the low-level local identity repository.
// MigrateOwner performs the whole guest-to-account hand-over in a single
// transaction: the account identity is inserted and made current, every
// record and queue entry owned by the guest is reassigned, and the guest row
// is removed.
type LocalIdentityRepository interface {
	Save(ctx context.Context, identity models.Identity) error
	GetByID(ctx context.Context, id string) (models.Identity, error)
	GetCurrent(ctx context.Context) (models.Identity, error)
	GetGuest(ctx context.Context) (models.Identity, error)
	SetCurrent(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	MigrateOwner(ctx context.Context, guestID string, account models.Identity) error
}
