package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entity kinds carried by the sync queue.
const (
	EntityReminder   = "reminder"
	EntityCategory   = "category"
	EntitySavedPlace = "saved_place"
)

// Queue operations.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// MaxSyncAttempts bounds automatic retry. An entry that has failed this many
// times is dead-lettered: excluded from active processing but retained until
// an explicit purge.
const MaxSyncAttempts = 3

// SyncQueueEntry is one pending outbound mutation. Payload is a full
// current-state snapshot in the remote wire encoding, not a diff, so that
// replay after a crash mid-flight is idempotent.
type SyncQueueEntry struct {
	ID            string          `json:"id"`
	EntityType    string          `json:"entity_type"`
	EntityID      string          `json:"entity_id"`
	Operation     string          `json:"operation"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	OwnerID       string          `json:"owner_id,omitempty"`
	Attempts      int             `json:"attempts"`
	LastAttemptAt *time.Time      `json:"last_attempt_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TableName returns the name of the database table associated with
// SyncQueueEntry.
func (e SyncQueueEntry) TableName() string {
	return "sync_queue"
}

// QueueEntryID derives a unique queue identifier. The enqueue timestamp keeps
// multiple pending operations for the same entity distinct.
func QueueEntryID(entityType, entityID string, at time.Time) string {
	return fmt.Sprintf("%s:%s:%d", entityType, entityID, at.UnixNano())
}

// SyncCounts aggregates the outcome of one queue-draining pass.
type SyncCounts struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// EntityCounts aggregates per-entity-type successes of a bulk push or pull.
type EntityCounts struct {
	Reminders   int `json:"reminders"`
	Categories  int `json:"categories"`
	SavedPlaces int `json:"saved_places"`
}
