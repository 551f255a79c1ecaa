package service

import (
	"context"

	"github.com/akhmetov/go-remind-sync/models"
)

// AuthService handles server-side account registration, credential
// verification and JWT lifecycle.
type AuthService interface {
	// RegisterUser creates an account. The plaintext password is bcrypt
	// hashed before it reaches the store.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the credentials and returns the stored account.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordService is the server-side record store behind the sync endpoints.
// Every call is scoped to the authenticated owner: the service stamps the
// owner id onto inbound snapshots so a client cannot write into another
// account's rows.
type RecordService interface {
	UpsertReminder(ctx context.Context, ownerID string, remote models.RemoteReminder) error
	DeleteReminder(ctx context.Context, ownerID string, id string) error
	ListReminders(ctx context.Context, ownerID string) ([]models.RemoteReminder, error)

	UpsertCategory(ctx context.Context, ownerID string, remote models.RemoteCategory) error
	DeleteCategory(ctx context.Context, ownerID string, id string) error
	ListCategories(ctx context.Context, ownerID string) ([]models.RemoteCategory, error)

	UpsertSavedPlace(ctx context.Context, ownerID string, remote models.RemoteSavedPlace) error
	DeleteSavedPlace(ctx context.Context, ownerID string, id string) error
	ListSavedPlaces(ctx context.Context, ownerID string) ([]models.RemoteSavedPlace, error)
}
