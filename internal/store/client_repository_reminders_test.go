package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/models"
)

func newTestReminderRepo(t *testing.T) (*localReminderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localReminderRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func reminderRowValues(r models.Reminder) []driver.Value {
	args := reminderArgs(r)
	values := make([]driver.Value, len(args))
	for i, a := range args {
		values[i] = a
	}
	return values
}

func timeReminder(id, ownerID string) models.Reminder {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return models.Reminder{
		ID:             id,
		OwnerID:        ownerID,
		Title:          "stand-up",
		Type:           models.ReminderTypeTime,
		TriggerAt:      &at,
		DeliveryMethod: models.DeliveryNotification,
		Priority:       models.PriorityMedium,
		IsActive:       true,
		CreatedAt:      at.Add(-time.Hour),
		UpdatedAt:      at.Add(-time.Hour),
	}
}

func TestReminderCreate_Success(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	reminder := timeReminder("rem-1", "user-1")

	mock.ExpectExec("INSERT INTO reminders").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), reminder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReminderUpdate_MissingRecord(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	title := "renamed"

	mock.ExpectExec("UPDATE reminders").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "user-1", "rem-404", models.ReminderUpdate{Title: &title}, time.Now())
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestReminderSoftDelete_IdempotentOnMissingRecord(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	// deleting a record that is absent or already deleted succeeds quietly
	mock.ExpectExec("UPDATE reminders SET is_deleted").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SoftDelete(context.Background(), "user-1", "rem-404", time.Now()); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
}

func TestReminderGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM reminders").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "user-1", "rem-404")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestReminderGetByID_Success(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	reminder := timeReminder("rem-1", "user-1")

	rows := sqlmock.NewRows(reminderColumns).
		AddRow(reminderRowValues(reminder)...)

	mock.ExpectQuery("SELECT (.+) FROM reminders").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "user-1", "rem-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "rem-1" || got.Title != "stand-up" {
		t.Errorf("unexpected reminder: %+v", got)
	}
	if got.TriggerAt == nil || !got.TriggerAt.Equal(*reminder.TriggerAt) {
		t.Errorf("trigger_at mismatch: %v", got.TriggerAt)
	}
}

func TestReminderListByOwner_Success(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	first := timeReminder("rem-1", "user-1")
	second := timeReminder("rem-2", "user-1")

	rows := sqlmock.NewRows(reminderColumns).
		AddRow(reminderRowValues(first)...).
		AddRow(reminderRowValues(second)...)

	mock.ExpectQuery("SELECT (.+) FROM reminders").
		WillReturnRows(rows)

	reminders, err := repo.ListByOwner(context.Background(), "user-1", models.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(reminders))
	}
}

func TestReminderUpsert_Success(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	reminder := timeReminder("rem-1", "user-1")
	reminder.IsDeleted = true

	mock.ExpectExec("INSERT OR REPLACE INTO reminders").
		WillReturnResult(sqlmock.NewResult(1, 1))

	// tombstones flow through upsert unchanged
	if err := repo.Upsert(context.Background(), reminder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
