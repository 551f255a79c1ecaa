package store

import (
	"context"

	"github.com/akhmetov/go-remind-sync/models"
)

// ErrorClassifier decides whether a failed database operation is worth
// retrying.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// UserRepository is the server-side account store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// RemoteRecordRepository is the server-side record store behind the sync
// endpoints. Upserts are scoped to the owner: a row owned by someone else is
// never overwritten, the statement simply affects nothing. Deletes are
// tombstones, listing returns tombstones too so other devices can converge.
type RemoteRecordRepository interface {
	UpsertReminder(ctx context.Context, reminder models.Reminder) error
	DeleteReminder(ctx context.Context, ownerID string, id string) error
	ListReminders(ctx context.Context, ownerID string) ([]models.Reminder, error)

	UpsertCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, ownerID string, id string) error
	ListCategories(ctx context.Context, ownerID string) ([]models.Category, error)

	UpsertSavedPlace(ctx context.Context, place models.SavedPlace) error
	DeleteSavedPlace(ctx context.Context, ownerID string, id string) error
	ListSavedPlaces(ctx context.Context, ownerID string) ([]models.SavedPlace, error)
}
