package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akhmetov/go-remind-sync/models"
)

func validTimeReminder() models.Reminder {
	at := time.Now().Add(time.Hour)
	return models.Reminder{
		ID:             "rem-1",
		OwnerID:        "user-1",
		Title:          "stand-up",
		Type:           models.ReminderTypeTime,
		TriggerAt:      &at,
		DeliveryMethod: models.DeliveryNotification,
		Priority:       models.PriorityMedium,
		IsActive:       true,
	}
}

func validLocationReminder() models.Reminder {
	lat, lon, radius := 55.75, 37.62, 250.0
	return models.Reminder{
		ID:             "rem-2",
		OwnerID:        "user-1",
		Title:          "buy milk",
		Type:           models.ReminderTypeLocation,
		Latitude:       &lat,
		Longitude:      &lon,
		Radius:         &radius,
		TriggerOn:      models.TriggerOnEnter,
		DeliveryMethod: models.DeliveryNotification,
		Priority:       models.PriorityLow,
		IsActive:       true,
	}
}

func TestValidateReminder_TimeSuccess(t *testing.T) {
	v := NewRecordValidator()

	if err := v.Validate(context.Background(), validTimeReminder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateReminder_LocationSuccess(t *testing.T) {
	v := NewRecordValidator()

	if err := v.Validate(context.Background(), validLocationReminder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateReminder_TypeFieldExclusivity(t *testing.T) {
	v := NewRecordValidator()

	timeWithCoords := validTimeReminder()
	lat := 55.75
	timeWithCoords.Latitude = &lat
	if err := v.Validate(context.Background(), timeWithCoords); !errors.Is(err, ErrUnexpectedLocation) {
		t.Errorf("expected ErrUnexpectedLocation, got %v", err)
	}

	locationWithTrigger := validLocationReminder()
	at := time.Now()
	locationWithTrigger.TriggerAt = &at
	if err := v.Validate(context.Background(), locationWithTrigger); !errors.Is(err, ErrUnexpectedTrigger) {
		t.Errorf("expected ErrUnexpectedTrigger, got %v", err)
	}
}

func TestValidateReminder_RadiusBounds(t *testing.T) {
	v := NewRecordValidator()

	tests := []struct {
		name    string
		radius  float64
		wantErr error
	}{
		{"below minimum", 99, ErrRadiusOutOfRange},
		{"at minimum", 100, nil},
		{"at maximum", 5000, nil},
		{"above maximum", 5001, ErrRadiusOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder := validLocationReminder()
			reminder.Radius = &tt.radius
			err := v.Validate(context.Background(), reminder)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("radius %v: expected %v, got %v", tt.radius, tt.wantErr, err)
			}
		})
	}
}

func TestValidateReminder_UnknownType(t *testing.T) {
	v := NewRecordValidator()

	reminder := validTimeReminder()
	reminder.Type = "weekly"

	if err := v.Validate(context.Background(), reminder); !errors.Is(err, ErrInvalidReminderType) {
		t.Errorf("expected ErrInvalidReminderType, got %v", err)
	}
}

func TestValidateReminder_CompletionRules(t *testing.T) {
	v := NewRecordValidator()

	completed := validTimeReminder()
	completed.IsCompleted = true
	if err := v.Validate(context.Background(), completed); !errors.Is(err, ErrIncompleteCompletion) {
		t.Errorf("expected ErrIncompleteCompletion, got %v", err)
	}

	at := time.Now()
	completed.CompletedAt = &at
	if err := v.Validate(context.Background(), completed); !errors.Is(err, ErrCompletedButActive) {
		t.Errorf("expected ErrCompletedButActive, got %v", err)
	}

	completed.IsActive = false
	if err := v.Validate(context.Background(), completed); err != nil {
		t.Errorf("expected valid completed reminder, got %v", err)
	}
}

func TestValidateReminder_FieldScoping(t *testing.T) {
	v := NewRecordValidator()

	// scoped validation skips the unnamed fields
	broken := validTimeReminder()
	broken.Title = ""

	if err := v.Validate(context.Background(), broken, FieldID, FieldOwnerID); err != nil {
		t.Errorf("expected scoped validation to pass, got %v", err)
	}
	if err := v.Validate(context.Background(), broken, FieldTitle); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestValidateCategory(t *testing.T) {
	v := NewRecordValidator()

	category := models.Category{ID: "cat-1", OwnerID: "user-1", Name: "errands"}
	if err := v.Validate(context.Background(), category); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	category.Name = ""
	if err := v.Validate(context.Background(), category); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestValidateSavedPlace_CoordinateBounds(t *testing.T) {
	v := NewRecordValidator()

	place := models.SavedPlace{ID: "place-1", OwnerID: "user-1", Name: "office", Latitude: 55.75, Longitude: 37.62}
	if err := v.Validate(context.Background(), place); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	place.Latitude = 91
	if err := v.Validate(context.Background(), place); !errors.Is(err, ErrLatitudeOutOfRange) {
		t.Errorf("expected ErrLatitudeOutOfRange, got %v", err)
	}

	place.Latitude = 55.75
	place.Longitude = -181
	if err := v.Validate(context.Background(), place); !errors.Is(err, ErrLongitudeOutOfRange) {
		t.Errorf("expected ErrLongitudeOutOfRange, got %v", err)
	}
}

func TestValidateIdentity(t *testing.T) {
	v := NewRecordValidator()

	guest := models.Identity{ID: models.GuestIDPrefix + "abc", IsGuest: true}
	if err := v.Validate(context.Background(), guest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	guest.Email = "guest@example.com"
	if err := v.Validate(context.Background(), guest); !errors.Is(err, ErrGuestWithEmail) {
		t.Errorf("expected ErrGuestWithEmail, got %v", err)
	}

	squatter := models.Identity{ID: models.GuestIDPrefix + "abc", IsGuest: false}
	if err := v.Validate(context.Background(), squatter); !errors.Is(err, ErrAccountInGuestNamespace) {
		t.Errorf("expected ErrAccountInGuestNamespace, got %v", err)
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()

	if err := v.Validate(context.Background(), 42); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}
