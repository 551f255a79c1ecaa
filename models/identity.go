package models

import (
	"strings"
	"time"
)

// GuestIDPrefix is the reserved identifier namespace for guest identities.
// Sync eligibility can be decided by inspecting the identifier alone, without
// a remote lookup: a prefixed id never crosses the trust boundary.
const GuestIDPrefix = "guest-"

// Identity is a local account: either a device-scoped guest or a registered
// user supplied by the auth collaborator. At most one guest and at most one
// current identity exist locally at a time.
type Identity struct {
	ID          string    `json:"id"`
	IsGuest     bool      `json:"is_guest"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	IsPremium   bool      `json:"is_premium"`
	IsCurrent   bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Identity.
func (i Identity) TableName() string {
	return "identities"
}

// IsGuestID reports whether id belongs to the guest namespace.
func IsGuestID(id string) bool {
	return strings.HasPrefix(id, GuestIDPrefix)
}
