package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/akhmetov/go-remind-sync/models"
)

// reminderColumns is the canonical column order shared by every reminder
// statement and scan in this package.
var reminderColumns = []string{
	"id",
	"owner_id",
	"title",
	"notes",
	"type",
	"trigger_at",
	"recurrence_rule",
	"latitude",
	"longitude",
	"radius",
	"trigger_on",
	"is_recurring_location",
	"delivery_method",
	"delivery_payload",
	"category_id",
	"priority",
	"is_completed",
	"is_active",
	"completed_at",
	"notification_id",
	"geofence_id",
	"synced_at",
	"is_deleted",
	"created_at",
	"updated_at",
}

const (
	insertReminder = `
		INSERT INTO reminders (
			id, owner_id, title, notes, type,
			trigger_at, recurrence_rule,
			latitude, longitude, radius, trigger_on, is_recurring_location,
			delivery_method, delivery_payload,
			category_id, priority,
			is_completed, is_active, completed_at,
			notification_id, geofence_id,
			synced_at, is_deleted, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	upsertReminder = `
		INSERT OR REPLACE INTO reminders (
			id, owner_id, title, notes, type,
			trigger_at, recurrence_rule,
			latitude, longitude, radius, trigger_on, is_recurring_location,
			delivery_method, delivery_payload,
			category_id, priority,
			is_completed, is_active, completed_at,
			notification_id, geofence_id,
			synced_at, is_deleted, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	softDeleteReminder = `
		UPDATE reminders SET is_deleted = 1, updated_at = ?
		WHERE owner_id = ? AND id = ?;`

	markReminderSynced = `
		UPDATE reminders SET synced_at = ?
		WHERE owner_id = ? AND id = ?;`

	insertCategory = `
		INSERT INTO categories (
			id, owner_id, name, color, icon, is_deleted, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	upsertCategory = `
		INSERT OR REPLACE INTO categories (
			id, owner_id, name, color, icon, is_deleted, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	softDeleteCategory = `
		UPDATE categories SET is_deleted = 1, updated_at = ?
		WHERE owner_id = ? AND id = ?;`

	getCategory = `
		SELECT id, owner_id, name, color, icon, is_deleted, created_at, updated_at
		FROM categories
		WHERE owner_id = ? AND id = ? AND is_deleted = 0;`

	getAllCategories = `
		SELECT id, owner_id, name, color, icon, is_deleted, created_at, updated_at
		FROM categories
		WHERE owner_id = ? AND is_deleted = 0
		ORDER BY name ASC;`

	insertSavedPlace = `
		INSERT INTO saved_places (
			id, owner_id, name, address, latitude, longitude, is_deleted, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	upsertSavedPlace = `
		INSERT OR REPLACE INTO saved_places (
			id, owner_id, name, address, latitude, longitude, is_deleted, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	softDeleteSavedPlace = `
		UPDATE saved_places SET is_deleted = 1, updated_at = ?
		WHERE owner_id = ? AND id = ?;`

	getSavedPlace = `
		SELECT id, owner_id, name, address, latitude, longitude, is_deleted, created_at, updated_at
		FROM saved_places
		WHERE owner_id = ? AND id = ? AND is_deleted = 0;`

	getAllSavedPlaces = `
		SELECT id, owner_id, name, address, latitude, longitude, is_deleted, created_at, updated_at
		FROM saved_places
		WHERE owner_id = ? AND is_deleted = 0
		ORDER BY name ASC;`

	enqueueSyncEntry = `
		INSERT INTO sync_queue (
			id, entity_type, entity_id, operation, payload, owner_id,
			attempts, last_attempt_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	getPendingSyncEntries = `
		SELECT id, entity_type, entity_id, operation, payload, owner_id,
		       attempts, last_attempt_at, created_at
		FROM sync_queue
		WHERE owner_id = ? AND attempts < ?
		ORDER BY created_at ASC;`

	countPendingSyncEntries = `
		SELECT COUNT(*) FROM sync_queue
		WHERE owner_id = ? AND attempts < ?;`

	deleteSyncEntry = `
		DELETE FROM sync_queue WHERE id = ?;`

	bumpSyncEntryAttempts = `
		UPDATE sync_queue SET attempts = attempts + 1, last_attempt_at = ?
		WHERE id = ?;`

	purgeDeadLetteredEntries = `
		DELETE FROM sync_queue WHERE owner_id = ? AND attempts >= ?;`

	insertIdentity = `
		INSERT INTO identities (
			id, is_guest, email, display_name, is_premium, is_current, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	getIdentityByID = `
		SELECT id, is_guest, email, display_name, is_premium, is_current, created_at
		FROM identities
		WHERE id = ?;`

	getCurrentIdentity = `
		SELECT id, is_guest, email, display_name, is_premium, is_current, created_at
		FROM identities
		WHERE is_current = 1
		ORDER BY is_guest ASC
		LIMIT 1;`

	getGuestIdentity = `
		SELECT id, is_guest, email, display_name, is_premium, is_current, created_at
		FROM identities
		WHERE is_guest = 1
		LIMIT 1;`

	clearCurrentIdentity = `
		UPDATE identities SET is_current = 0 WHERE is_current = 1;`

	setCurrentIdentity = `
		UPDATE identities SET is_current = 1 WHERE id = ?;`

	deleteIdentity = `
		DELETE FROM identities WHERE id = ?;`

	reassignRemindersOwner = `
		UPDATE reminders SET owner_id = ? WHERE owner_id = ?;`

	reassignCategoriesOwner = `
		UPDATE categories SET owner_id = ? WHERE owner_id = ?;`

	reassignSavedPlacesOwner = `
		UPDATE saved_places SET owner_id = ? WHERE owner_id = ?;`

	reassignQueueOwner = `
		UPDATE sync_queue SET owner_id = ? WHERE owner_id = ?;`
)

// buildListRemindersQuery assembles the filtered reminder listing for one
// owner. Soft-deleted rows are always excluded; the filter selects the
// visible subset and its ordering.
func buildListRemindersQuery(ownerID string, query models.ListQuery) (string, []any, error) {
	builder := sq.Select(reminderColumns...).
		From("reminders").
		Where(sq.Eq{"owner_id": ownerID, "is_deleted": 0})

	switch query.Filter {
	case models.FilterActive:
		builder = builder.
			Where(sq.Eq{"is_completed": 0, "is_active": 1}).
			OrderBy("type = 'location'", "COALESCE(trigger_at, created_at) ASC")
	case models.FilterCompleted:
		builder = builder.
			Where(sq.Eq{"is_completed": 1}).
			OrderBy("completed_at DESC")
	case models.FilterDateRange:
		builder = builder.
			Where(sq.GtOrEq{"trigger_at": query.From}).
			Where(sq.Lt{"trigger_at": query.To}).
			OrderBy("trigger_at ASC")
	case models.FilterToday:
		builder = builder.
			Where(sq.Or{
				sq.And{sq.GtOrEq{"trigger_at": query.From}, sq.Lt{"trigger_at": query.To}},
				sq.And{sq.GtOrEq{"completed_at": query.From}, sq.Lt{"completed_at": query.To}},
			}).
			OrderBy("is_completed ASC", "COALESCE(trigger_at, completed_at) ASC")
	default:
		builder = builder.OrderBy("created_at DESC")
	}

	return builder.ToSql()
}

// buildUpdateReminderQuery assembles a partial reminder update from the
// non-nil fields of the update struct. updated_at is always touched.
func buildUpdateReminderQuery(ownerID, id string, update models.ReminderUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("reminders").Set("updated_at", now)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	if update.TriggerAt != nil {
		builder = builder.Set("trigger_at", *update.TriggerAt)
	}
	if update.RecurrenceRule != nil {
		builder = builder.Set("recurrence_rule", *update.RecurrenceRule)
	}
	if update.Latitude != nil {
		builder = builder.Set("latitude", *update.Latitude)
	}
	if update.Longitude != nil {
		builder = builder.Set("longitude", *update.Longitude)
	}
	if update.Radius != nil {
		builder = builder.Set("radius", *update.Radius)
	}
	if update.TriggerOn != nil {
		builder = builder.Set("trigger_on", *update.TriggerOn)
	}
	if update.IsRecurringLocation != nil {
		builder = builder.Set("is_recurring_location", *update.IsRecurringLocation)
	}
	if update.DeliveryMethod != nil {
		builder = builder.Set("delivery_method", *update.DeliveryMethod)
	}
	if update.DeliveryPayload != nil {
		builder = builder.Set("delivery_payload", *update.DeliveryPayload)
	}
	if update.CategoryID != nil {
		builder = builder.Set("category_id", *update.CategoryID)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}
	if update.IsCompleted != nil {
		builder = builder.Set("is_completed", *update.IsCompleted)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.CompletedAt != nil {
		builder = builder.Set("completed_at", *update.CompletedAt)
	}
	if update.NotificationID != nil {
		builder = builder.Set("notification_id", *update.NotificationID)
	}
	if update.GeofenceID != nil {
		builder = builder.Set("geofence_id", *update.GeofenceID)
	}
	if update.SyncedAt != nil {
		builder = builder.Set("synced_at", *update.SyncedAt)
	}

	return builder.
		Where(sq.Eq{"owner_id": ownerID, "id": id, "is_deleted": 0}).
		ToSql()
}

// buildGetReminderQuery assembles the single-reminder lookup, excluding
// soft-deleted rows.
func buildGetReminderQuery(ownerID, id string) (string, []any, error) {
	return sq.Select(reminderColumns...).
		From("reminders").
		Where(sq.Eq{"owner_id": ownerID, "id": id, "is_deleted": 0}).
		ToSql()
}

// buildUpdateCategoryQuery assembles a partial category update.
func buildUpdateCategoryQuery(ownerID, id string, update models.CategoryUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("categories").Set("updated_at", now)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Color != nil {
		builder = builder.Set("color", *update.Color)
	}
	if update.Icon != nil {
		builder = builder.Set("icon", *update.Icon)
	}

	return builder.
		Where(sq.Eq{"owner_id": ownerID, "id": id, "is_deleted": 0}).
		ToSql()
}

// buildUpdateSavedPlaceQuery assembles a partial saved place update.
func buildUpdateSavedPlaceQuery(ownerID, id string, update models.SavedPlaceUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("saved_places").Set("updated_at", now)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
	}
	if update.Latitude != nil {
		builder = builder.Set("latitude", *update.Latitude)
	}
	if update.Longitude != nil {
		builder = builder.Set("longitude", *update.Longitude)
	}

	return builder.
		Where(sq.Eq{"owner_id": ownerID, "id": id, "is_deleted": 0}).
		ToSql()
}
