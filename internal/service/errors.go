package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrEmailTaken         = errors.New("email already registered")

	// ErrOffline is returned by FullSync when the connectivity gate reports
	// the remote store unreachable at the start of the sequence. The stage
	// operations themselves treat offline as a quiet skip with zero counts;
	// queued work is untouched either way.
	ErrOffline = errors.New("remote store unreachable")

	// ErrSyncInProgress is returned when a full sync is requested for an
	// owner whose previous full sync has not finished yet.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNoGuestToMigrate is returned by the guest migration when no guest
	// identity exists locally.
	ErrNoGuestToMigrate = errors.New("no guest identity to migrate")

	// ErrNotSignedIn is returned when an operation needs a current identity
	// and none has been resolved yet.
	ErrNotSignedIn = errors.New("no current identity")

	// ErrInvalidDataProvided is returned by the server auth service when a
	// request is missing required credential fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the password does not match the
	// stored bcrypt hash.
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
