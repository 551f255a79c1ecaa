package models

import "time"

// User is a registered account on the remote side. The sync engine only ever
// sees the identity attributes; PasswordHash never leaves the server store.
type User struct {
	// ID is the server-assigned identifier. It doubles as the owner id of
	// every synchronized record belonging to this account.
	ID string `json:"id"`

	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsPremium   bool   `json:"is_premium"`

	// Password carries the plaintext credential inbound on register/login
	// requests only. It is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored server-side.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}
