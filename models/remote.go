package models

import "time"

// Remote wire rows.
//
// Each local entity has exactly one wire representation and one conversion
// pair (toRemote/fromRemote) defined in this file, and nowhere else. The
// mapping must stay total in both directions: a field added to an entity
// without its wire counterpart is a latent data-loss bug. The reflection
// tests in remote_test.go fail the build the moment the two sides drift.

// RemoteReminder is the reminders row as the remote store sees it.
type RemoteReminder struct {
	ID                  string     `json:"id"`
	OwnerID             string     `json:"owner_id"`
	Title               string     `json:"title"`
	Notes               string     `json:"notes,omitempty"`
	Type                string     `json:"type"`
	TriggerAt           *time.Time `json:"trigger_at,omitempty"`
	RecurrenceRule      string     `json:"recurrence_rule,omitempty"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	Radius              *float64   `json:"radius,omitempty"`
	TriggerOn           string     `json:"trigger_on,omitempty"`
	IsRecurringLocation bool       `json:"is_recurring_location"`
	DeliveryMethod      string     `json:"delivery_method"`
	DeliveryPayload     string     `json:"delivery_payload,omitempty"`
	CategoryID          *string    `json:"category_id,omitempty"`
	Priority            string     `json:"priority"`
	IsCompleted         bool       `json:"is_completed"`
	IsActive            bool       `json:"is_active"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	NotificationID      *string    `json:"notification_id,omitempty"`
	GeofenceID          *string    `json:"geofence_id,omitempty"`
	SyncedAt            *time.Time `json:"synced_at,omitempty"`
	IsDeleted           bool       `json:"is_deleted"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ToRemote converts a local reminder into its wire row.
func (r Reminder) ToRemote() RemoteReminder {
	return RemoteReminder{
		ID:                  r.ID,
		OwnerID:             r.OwnerID,
		Title:               r.Title,
		Notes:               r.Notes,
		Type:                r.Type,
		TriggerAt:           r.TriggerAt,
		RecurrenceRule:      r.RecurrenceRule,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		Radius:              r.Radius,
		TriggerOn:           r.TriggerOn,
		IsRecurringLocation: r.IsRecurringLocation,
		DeliveryMethod:      r.DeliveryMethod,
		DeliveryPayload:     r.DeliveryPayload,
		CategoryID:          r.CategoryID,
		Priority:            r.Priority,
		IsCompleted:         r.IsCompleted,
		IsActive:            r.IsActive,
		CompletedAt:         r.CompletedAt,
		NotificationID:      r.NotificationID,
		GeofenceID:          r.GeofenceID,
		SyncedAt:            r.SyncedAt,
		IsDeleted:           r.IsDeleted,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ToLocal converts a wire row back into a local reminder.
func (r RemoteReminder) ToLocal() Reminder {
	return Reminder{
		ID:                  r.ID,
		OwnerID:             r.OwnerID,
		Title:               r.Title,
		Notes:               r.Notes,
		Type:                r.Type,
		TriggerAt:           r.TriggerAt,
		RecurrenceRule:      r.RecurrenceRule,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		Radius:              r.Radius,
		TriggerOn:           r.TriggerOn,
		IsRecurringLocation: r.IsRecurringLocation,
		DeliveryMethod:      r.DeliveryMethod,
		DeliveryPayload:     r.DeliveryPayload,
		CategoryID:          r.CategoryID,
		Priority:            r.Priority,
		IsCompleted:         r.IsCompleted,
		IsActive:            r.IsActive,
		CompletedAt:         r.CompletedAt,
		NotificationID:      r.NotificationID,
		GeofenceID:          r.GeofenceID,
		SyncedAt:            r.SyncedAt,
		IsDeleted:           r.IsDeleted,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// RemoteCategory is the categories row as the remote store sees it.
type RemoteCategory struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRemote converts a local category into its wire row.
func (c Category) ToRemote() RemoteCategory {
	return RemoteCategory{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToLocal converts a wire row back into a local category.
func (c RemoteCategory) ToLocal() Category {
	return Category{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// RemoteSavedPlace is the saved_places row as the remote store sees it.
type RemoteSavedPlace struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRemote converts a local saved place into its wire row.
func (p SavedPlace) ToRemote() RemoteSavedPlace {
	return RemoteSavedPlace{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		IsDeleted: p.IsDeleted,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToLocal converts a wire row back into a local saved place.
func (p RemoteSavedPlace) ToLocal() SavedPlace {
	return SavedPlace{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		IsDeleted: p.IsDeleted,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
