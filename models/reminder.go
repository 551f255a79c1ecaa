package models

import "time"

// Reminder kinds. A reminder either fires at a point in time or when the
// device crosses a geofence boundary; exactly one group of trigger fields is
// populated according to Type.
const (
	ReminderTypeTime     = "time"
	ReminderTypeLocation = "location"
)

// Geofence transition selectors for location reminders.
const (
	TriggerOnEnter = "enter"
	TriggerOnExit  = "exit"
	TriggerOnBoth  = "both"
)

// Delivery methods. The payload is an opaque blob interpreted by the
// notification/alarm/share collaborators, never by the sync engine.
const (
	DeliveryNotification = "notification"
	DeliveryAlarm        = "alarm"
	DeliveryShare        = "share"
)

// Priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Geofence radius bounds in meters.
const (
	MinRadius = 100
	MaxRadius = 5000
)

// Reminder is the primary synchronized entity. IDs are client-generated UUIDs
// and immutable; OwnerID scopes every read and write to one local identity.
type Reminder struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
	Type  string `json:"type"`

	// Time trigger fields, populated when Type == ReminderTypeTime.
	TriggerAt      *time.Time `json:"trigger_at,omitempty"`
	RecurrenceRule string     `json:"recurrence_rule,omitempty"`

	// Location trigger fields, populated when Type == ReminderTypeLocation.
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	Radius              *float64 `json:"radius,omitempty"`
	TriggerOn           string   `json:"trigger_on,omitempty"`
	IsRecurringLocation bool     `json:"is_recurring_location"`

	DeliveryMethod  string `json:"delivery_method"`
	DeliveryPayload string `json:"delivery_payload,omitempty"`

	CategoryID *string `json:"category_id,omitempty"`
	Priority   string  `json:"priority"`

	IsCompleted bool       `json:"is_completed"`
	IsActive    bool       `json:"is_active"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Opaque handles correlating the record with the platform notification
	// and geofence collaborators.
	NotificationID *string `json:"notification_id,omitempty"`
	GeofenceID     *string `json:"geofence_id,omitempty"`

	SyncedAt  *time.Time `json:"synced_at,omitempty"`
	IsDeleted bool       `json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Reminder.
func (r Reminder) TableName() string {
	return "reminders"
}

// ReminderUpdate carries a partial update: nil pointers leave the stored
// field untouched. OwnerID and ID are never updatable.
type ReminderUpdate struct {
	Title          *string
	Notes          *string
	TriggerAt      *time.Time
	RecurrenceRule *string

	Latitude            *float64
	Longitude           *float64
	Radius              *float64
	TriggerOn           *string
	IsRecurringLocation *bool

	DeliveryMethod  *string
	DeliveryPayload *string

	CategoryID *string
	Priority   *string

	IsCompleted *bool
	IsActive    *bool
	CompletedAt *time.Time

	NotificationID *string
	GeofenceID     *string

	SyncedAt *time.Time
}
