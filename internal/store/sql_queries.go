package store

const (
	createUser = `
		INSERT INTO users (id, email, display_name, password_hash, is_premium)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, display_name, password_hash, is_premium, created_at;`

	findUserByEmail = `
		SELECT id, email, display_name, password_hash, is_premium, created_at
		FROM users
		WHERE email = $1;`

	findUserByID = `
		SELECT id, email, display_name, password_hash, is_premium, created_at
		FROM users
		WHERE id = $1;`

	upsertRemoteReminder = `
		INSERT INTO reminders (
			id, owner_id, title, notes, type,
			trigger_at, recurrence_rule,
			latitude, longitude, radius, trigger_on, is_recurring_location,
			delivery_method, delivery_payload,
			category_id, priority,
			is_completed, is_active, completed_at,
			notification_id, geofence_id,
			synced_at, is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (id) DO UPDATE SET
			title                 = EXCLUDED.title,
			notes                 = EXCLUDED.notes,
			type                  = EXCLUDED.type,
			trigger_at            = EXCLUDED.trigger_at,
			recurrence_rule       = EXCLUDED.recurrence_rule,
			latitude              = EXCLUDED.latitude,
			longitude             = EXCLUDED.longitude,
			radius                = EXCLUDED.radius,
			trigger_on            = EXCLUDED.trigger_on,
			is_recurring_location = EXCLUDED.is_recurring_location,
			delivery_method       = EXCLUDED.delivery_method,
			delivery_payload      = EXCLUDED.delivery_payload,
			category_id           = EXCLUDED.category_id,
			priority              = EXCLUDED.priority,
			is_completed          = EXCLUDED.is_completed,
			is_active             = EXCLUDED.is_active,
			completed_at          = EXCLUDED.completed_at,
			notification_id       = EXCLUDED.notification_id,
			geofence_id           = EXCLUDED.geofence_id,
			synced_at             = EXCLUDED.synced_at,
			is_deleted            = EXCLUDED.is_deleted,
			updated_at            = EXCLUDED.updated_at
		WHERE reminders.owner_id = EXCLUDED.owner_id;`

	deleteRemoteReminder = `
		UPDATE reminders SET is_deleted = TRUE, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2;`

	getAllRemoteReminders = `
		SELECT
			id, owner_id, title, notes, type,
			trigger_at, recurrence_rule,
			latitude, longitude, radius, trigger_on, is_recurring_location,
			delivery_method, delivery_payload,
			category_id, priority,
			is_completed, is_active, completed_at,
			notification_id, geofence_id,
			synced_at, is_deleted, created_at, updated_at
		FROM reminders
		WHERE owner_id = $1
		ORDER BY created_at ASC;`

	upsertRemoteCategory = `
		INSERT INTO categories (
			id, owner_id, name, color, icon, is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name       = EXCLUDED.name,
			color      = EXCLUDED.color,
			icon       = EXCLUDED.icon,
			is_deleted = EXCLUDED.is_deleted,
			updated_at = EXCLUDED.updated_at
		WHERE categories.owner_id = EXCLUDED.owner_id;`

	deleteRemoteCategory = `
		UPDATE categories SET is_deleted = TRUE, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2;`

	getAllRemoteCategories = `
		SELECT id, owner_id, name, color, icon, is_deleted, created_at, updated_at
		FROM categories
		WHERE owner_id = $1
		ORDER BY created_at ASC;`

	upsertRemoteSavedPlace = `
		INSERT INTO saved_places (
			id, owner_id, name, address, latitude, longitude, is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name       = EXCLUDED.name,
			address    = EXCLUDED.address,
			latitude   = EXCLUDED.latitude,
			longitude  = EXCLUDED.longitude,
			is_deleted = EXCLUDED.is_deleted,
			updated_at = EXCLUDED.updated_at
		WHERE saved_places.owner_id = EXCLUDED.owner_id;`

	deleteRemoteSavedPlace = `
		UPDATE saved_places SET is_deleted = TRUE, updated_at = NOW()
		WHERE owner_id = $1 AND id = $2;`

	getAllRemoteSavedPlaces = `
		SELECT id, owner_id, name, address, latitude, longitude, is_deleted, created_at, updated_at
		FROM saved_places
		WHERE owner_id = $1
		ORDER BY created_at ASC;`
)
