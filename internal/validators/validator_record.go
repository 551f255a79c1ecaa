package validators

import (
	"context"

	"github.com/akhmetov/go-remind-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldTitle       = "title"
	FieldName        = "name"
	FieldTrigger     = "trigger"
	FieldDelivery    = "delivery"
	FieldPriority    = "priority"
	FieldCompletion  = "completion"
	FieldCoordinates = "coordinates"
)

var allowedTriggerOn = []string{
	models.TriggerOnEnter,
	models.TriggerOnExit,
	models.TriggerOnBoth,
}

var allowedDeliveryMethods = []string{
	models.DeliveryNotification,
	models.DeliveryAlarm,
	models.DeliveryShare,
}

var allowedPriorities = []string{
	models.PriorityLow,
	models.PriorityMedium,
	models.PriorityHigh,
}

// RecordValidator enforces the structural rules of the synchronized record
// types. A reminder carries exactly the trigger fields matching its type, a
// geofence radius stays within the supported range, and a completed reminder
// is never left active.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Reminder:
		return v.validateReminder(ctx, value, fields...)
	case *models.Reminder:
		return v.validateReminder(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	case models.SavedPlace:
		return v.validateSavedPlace(ctx, value, fields...)
	case *models.SavedPlace:
		return v.validateSavedPlace(ctx, *value, fields...)

	case models.Identity:
		return v.validateIdentity(ctx, value)
	case *models.Identity:
		return v.validateIdentity(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func contains(allowed []string, value string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

func (v *RecordValidator) validateReminder(_ context.Context, reminder models.Reminder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldTitle, FieldTrigger, FieldDelivery, FieldPriority, FieldCompletion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if reminder.ID == "" {
				return ErrInvalidID
			}
		case FieldOwnerID:
			if reminder.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if reminder.Title == "" {
				return ErrEmptyTitle
			}
		case FieldTrigger:
			if err := v.validateTrigger(reminder); err != nil {
				return err
			}
		case FieldDelivery:
			if !contains(allowedDeliveryMethods, reminder.DeliveryMethod) {
				return ErrInvalidDeliveryMethod
			}
		case FieldPriority:
			if !contains(allowedPriorities, reminder.Priority) {
				return ErrInvalidPriority
			}
		case FieldCompletion:
			if reminder.IsCompleted {
				if reminder.CompletedAt == nil {
					return ErrIncompleteCompletion
				}
				if reminder.IsActive {
					return ErrCompletedButActive
				}
			}
		}
	}

	return nil
}

// validateTrigger enforces type/field exclusivity: a time reminder carries a
// trigger timestamp and no geofence, a location reminder the opposite.
func (v *RecordValidator) validateTrigger(reminder models.Reminder) error {
	switch reminder.Type {
	case models.ReminderTypeTime:
		if reminder.TriggerAt == nil {
			return ErrMissingTrigger
		}
		if reminder.Latitude != nil || reminder.Longitude != nil || reminder.Radius != nil {
			return ErrUnexpectedLocation
		}

	case models.ReminderTypeLocation:
		if reminder.TriggerAt != nil {
			return ErrUnexpectedTrigger
		}
		if reminder.Latitude == nil || reminder.Longitude == nil || reminder.Radius == nil {
			return ErrMissingCoordinates
		}
		if *reminder.Latitude < -90 || *reminder.Latitude > 90 {
			return ErrLatitudeOutOfRange
		}
		if *reminder.Longitude < -180 || *reminder.Longitude > 180 {
			return ErrLongitudeOutOfRange
		}
		if *reminder.Radius < models.MinRadius || *reminder.Radius > models.MaxRadius {
			return ErrRadiusOutOfRange
		}
		if !contains(allowedTriggerOn, reminder.TriggerOn) {
			return ErrInvalidTriggerOn
		}

	default:
		return ErrInvalidReminderType
	}

	return nil
}

func (v *RecordValidator) validateCategory(_ context.Context, category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if category.ID == "" {
				return ErrInvalidID
			}
		case FieldOwnerID:
			if category.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldName:
			if category.Name == "" {
				return ErrEmptyName
			}
		}
	}

	return nil
}

func (v *RecordValidator) validateSavedPlace(_ context.Context, place models.SavedPlace, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldName, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if place.ID == "" {
				return ErrInvalidID
			}
		case FieldOwnerID:
			if place.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldName:
			if place.Name == "" {
				return ErrEmptyName
			}
		case FieldCoordinates:
			if place.Latitude < -90 || place.Latitude > 90 {
				return ErrLatitudeOutOfRange
			}
			if place.Longitude < -180 || place.Longitude > 180 {
				return ErrLongitudeOutOfRange
			}
		}
	}

	return nil
}

func (v *RecordValidator) validateIdentity(_ context.Context, identity models.Identity) error {
	if identity.ID == "" {
		return ErrInvalidIdentityID
	}
	if identity.IsGuest {
		if !models.IsGuestID(identity.ID) {
			return ErrInvalidIdentityID
		}
		if identity.Email != "" {
			return ErrGuestWithEmail
		}
		return nil
	}
	if models.IsGuestID(identity.ID) {
		return ErrAccountInGuestNamespace
	}
	return nil
}
