package service

import (
	"context"
	"time"

	"github.com/akhmetov/go-remind-sync/models"
)

// ConnectivityGate answers whether the remote store is reachable right now.
// The connectivity package provides the production implementation.
type ConnectivityGate interface {
	IsConnected(ctx context.Context) bool
}

// IDGenerator produces new record identifiers.
type IDGenerator interface {
	Generate() string
}

// ClientReminderService manages reminders against the local store and feeds
// the outbound sync queue. Every mutation is written locally first; if the
// owner is sync-eligible a full-snapshot queue entry is recorded in the same
// call, and actual network traffic happens later in the sync service.
type ClientReminderService interface {
	// Create validates and persists a new reminder. An empty ID is filled
	// with a generated one; CreatedAt/UpdatedAt are stamped here.
	Create(ctx context.Context, reminder models.Reminder) (models.Reminder, error)

	// Update applies a partial update and returns the stored record.
	Update(ctx context.Context, ownerID string, id string, update models.ReminderUpdate) (models.Reminder, error)

	// Complete marks the reminder done: completed, inactive, completion
	// timestamp stamped.
	Complete(ctx context.Context, ownerID string, id string) (models.Reminder, error)

	// Delete soft-deletes the reminder. Deleting an absent record is a
	// quiet no-op locally, but the remote delete is still queued.
	Delete(ctx context.Context, ownerID string, id string) error

	// GetByID returns a single non-deleted reminder.
	GetByID(ctx context.Context, ownerID string, id string) (models.Reminder, error)

	// List returns the owner's reminders filtered per query.
	List(ctx context.Context, ownerID string, query models.ListQuery) ([]models.Reminder, error)
}

// ClientCategoryService manages categories, same local-first contract as
// [ClientReminderService].
type ClientCategoryService interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
	Update(ctx context.Context, ownerID string, id string, update models.CategoryUpdate) (models.Category, error)
	Delete(ctx context.Context, ownerID string, id string) error
	GetByID(ctx context.Context, ownerID string, id string) (models.Category, error)
	List(ctx context.Context, ownerID string) ([]models.Category, error)
}

// ClientSavedPlaceService manages saved places, same local-first contract as
// [ClientReminderService].
type ClientSavedPlaceService interface {
	Create(ctx context.Context, place models.SavedPlace) (models.SavedPlace, error)
	Update(ctx context.Context, ownerID string, id string, update models.SavedPlaceUpdate) (models.SavedPlace, error)
	Delete(ctx context.Context, ownerID string, id string) error
	GetByID(ctx context.Context, ownerID string, id string) (models.SavedPlace, error)
	List(ctx context.Context, ownerID string) ([]models.SavedPlace, error)
}

// ClientIdentityService resolves who owns the local data and handles the
// guest-to-account hand-over.
type ClientIdentityService interface {
	// ResolveActiveIdentity returns the current identity, or ErrNotSignedIn
	// on a fresh install where no identity exists yet.
	ResolveActiveIdentity(ctx context.Context) (models.Identity, error)

	// CreateGuest makes the device's guest identity current, reusing an
	// existing guest row and minting one only when none exists. A device
	// holds at most one guest.
	CreateGuest(ctx context.Context) (models.Identity, error)

	// IsSyncEligible reports whether records owned by the identity may cross
	// the network boundary. Guests never sync.
	IsSyncEligible(identity models.Identity) bool

	// Register creates a remote account, stores the identity locally and
	// makes it current. The adapter keeps the issued token.
	Register(ctx context.Context, email, password, displayName string) (models.Identity, error)

	// Login authenticates against the remote store and makes the returned
	// identity current locally.
	Login(ctx context.Context, email, password string) (models.Identity, error)

	// MigrateGuestToAccount registers a remote account and hands every
	// guest-owned record and queue entry to it in one local transaction.
	// The remote account is created first; if the local hand-over fails the
	// guest data stays intact.
	MigrateGuestToAccount(ctx context.Context, email, password, displayName string) (models.Identity, error)
}

// ClientSyncService reconciles the local store with the remote one. Guest
// owners and offline periods are quiet skips for the stage operations: they
// return zero counts and no error, never touching the queue or the network.
type ClientSyncService interface {
	// ProcessQueue drains the owner's pending queue entries oldest-first.
	// Each entry is pushed independently: a failure bumps that entry's
	// attempt count and processing continues. Returns per-entry counts.
	ProcessQueue(ctx context.Context, ownerID string) (models.SyncCounts, error)

	// PushAll uploads a full snapshot of the owner's local records,
	// local copy winning over whatever the server holds.
	PushAll(ctx context.Context, ownerID string) (models.EntityCounts, error)

	// PullAll downloads the owner's full remote snapshot and replaces local
	// rows wholesale, remote copy winning. Tombstones propagate.
	PullAll(ctx context.Context, ownerID string) (models.EntityCounts, error)

	// FullSync runs ProcessQueue, PushAll and PullAll in order. At most one
	// full sync per owner runs at a time; a concurrent request returns
	// [ErrSyncInProgress], and a sequence started offline returns
	// [ErrOffline].
	FullSync(ctx context.Context, ownerID string) error

	// PendingCount reports how many live entries wait in the owner's queue.
	PendingCount(ctx context.Context, ownerID string) (int, error)

	// PurgeDeadLettered drops the owner's dead-lettered entries and returns
	// how many were removed.
	PurgeDeadLettered(ctx context.Context, ownerID string) (int64, error)
}

// ClientSyncJob is a background worker that periodically runs a full sync
// for the active identity.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, ownerID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
