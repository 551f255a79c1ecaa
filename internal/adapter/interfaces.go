// Package adapter provides transport-layer abstractions for communicating
// with the remote record store.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/akhmetov/go-remind-sync/models"
)

// ServerAdapter defines transport-agnostic communication with the remote
// record store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a remote account with the provided credentials. On
	// success it stores the returned bearer token via SetToken and returns
	// the server-side user record carrying the canonical account id.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates against the remote store. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Ping probes the health endpoint with a short deadline. A nil return
	// means the remote store answered.
	Ping(ctx context.Context) error

	// UpsertReminder pushes one reminder snapshot. The server treats the
	// request as create-or-replace keyed by id.
	UpsertReminder(ctx context.Context, reminder models.RemoteReminder) error

	// DeleteReminder tombstones one reminder remotely.
	DeleteReminder(ctx context.Context, id string) error

	// PullReminders fetches every reminder (tombstones included) owned by
	// the authenticated user.
	PullReminders(ctx context.Context) ([]models.RemoteReminder, error)

	// UpsertCategory pushes one category snapshot.
	UpsertCategory(ctx context.Context, category models.RemoteCategory) error

	// DeleteCategory tombstones one category remotely.
	DeleteCategory(ctx context.Context, id string) error

	// PullCategories fetches every category owned by the authenticated user.
	PullCategories(ctx context.Context) ([]models.RemoteCategory, error)

	// UpsertSavedPlace pushes one saved place snapshot.
	UpsertSavedPlace(ctx context.Context, place models.RemoteSavedPlace) error

	// DeleteSavedPlace tombstones one saved place remotely.
	DeleteSavedPlace(ctx context.Context, id string) error

	// PullSavedPlaces fetches every saved place owned by the authenticated
	// user.
	PullSavedPlaces(ctx context.Context) ([]models.RemoteSavedPlace, error)
}
