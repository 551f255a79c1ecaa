package models

import "time"

// SavedPlace is a named coordinate the user can attach location reminders to.
type SavedPlace struct {
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

// TableName returns the name of the database table associated with SavedPlace.
func (p SavedPlace) TableName() string {
	return "saved_places"
}

// SavedPlaceUpdate carries a partial saved-place update; nil pointers leave
// the stored field untouched.
type SavedPlaceUpdate struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}
