package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidID               = errors.New("invalid record id")
	ErrInvalidOwnerID          = errors.New("invalid owner id")
	ErrEmptyTitle              = errors.New("title is required")
	ErrEmptyName               = errors.New("name is required")
	ErrInvalidReminderType     = errors.New("invalid reminder type")
	ErrMissingTrigger          = errors.New("time reminder requires a trigger timestamp")
	ErrUnexpectedLocation      = errors.New("time reminder cannot carry location fields")
	ErrMissingCoordinates      = errors.New("location reminder requires coordinates")
	ErrUnexpectedTrigger       = errors.New("location reminder cannot carry a trigger timestamp")
	ErrRadiusOutOfRange        = errors.New("geofence radius is out of range")
	ErrInvalidTriggerOn        = errors.New("invalid geofence transition")
	ErrInvalidDeliveryMethod   = errors.New("invalid delivery method")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrIncompleteCompletion    = errors.New("completed reminder requires a completion timestamp")
	ErrCompletedButActive      = errors.New("completed reminder cannot stay active")
	ErrLatitudeOutOfRange      = errors.New("latitude is out of range")
	ErrLongitudeOutOfRange     = errors.New("longitude is out of range")
	ErrInvalidIdentityID       = errors.New("invalid identity id")
	ErrGuestWithEmail          = errors.New("guest identity cannot carry an email")
	ErrAccountInGuestNamespace = errors.New("registered identity cannot use the guest id namespace")
)
