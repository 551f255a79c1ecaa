package models

import "time"

// Category groups reminders. Color and icon are opaque UI hints carried
// through sync untouched.
type Category struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Category.
func (c Category) TableName() string {
	return "categories"
}

// CategoryUpdate carries a partial category update; nil pointers leave the
// stored field untouched.
type CategoryUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}
