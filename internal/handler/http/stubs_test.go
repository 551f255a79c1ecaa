package http

import (
	"context"

	"github.com/akhmetov/go-remind-sync/internal/service"
	"github.com/akhmetov/go-remind-sync/models"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	parseErr    error

	user    models.User
	tokenID string
}

func (s *stubAuthService) RegisterUser(_ context.Context, _ models.User) (models.User, error) {
	if s.registerErr != nil {
		return models.User{}, s.registerErr
	}
	return s.user, nil
}

func (s *stubAuthService) Login(_ context.Context, _ models.User) (models.User, error) {
	if s.loginErr != nil {
		return models.User{}, s.loginErr
	}
	return s.user, nil
}

func (s *stubAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed-jwt-for-" + user.ID, UserID: user.ID}, nil
}

func (s *stubAuthService) ParseToken(_ context.Context, _ string) (models.Token, error) {
	if s.parseErr != nil {
		return models.Token{}, s.parseErr
	}
	return models.Token{UserID: s.tokenID}, nil
}

type stubRecordService struct {
	upsertErr error
	deleteErr error
	listErr   error

	upsertedOwner string
	upsertedIDs   []string
	deletedIDs    []string

	reminders []models.RemoteReminder
	cats      []models.RemoteCategory
	places    []models.RemoteSavedPlace
}

func (s *stubRecordService) UpsertReminder(_ context.Context, ownerID string, remote models.RemoteReminder) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upsertedOwner = ownerID
	s.upsertedIDs = append(s.upsertedIDs, remote.ID)
	return nil
}

func (s *stubRecordService) DeleteReminder(_ context.Context, _ string, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubRecordService) ListReminders(_ context.Context, _ string) ([]models.RemoteReminder, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.reminders, nil
}

func (s *stubRecordService) UpsertCategory(_ context.Context, ownerID string, remote models.RemoteCategory) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upsertedOwner = ownerID
	s.upsertedIDs = append(s.upsertedIDs, remote.ID)
	return nil
}

func (s *stubRecordService) DeleteCategory(_ context.Context, _ string, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubRecordService) ListCategories(_ context.Context, _ string) ([]models.RemoteCategory, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.cats, nil
}

func (s *stubRecordService) UpsertSavedPlace(_ context.Context, ownerID string, remote models.RemoteSavedPlace) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upsertedOwner = ownerID
	s.upsertedIDs = append(s.upsertedIDs, remote.ID)
	return nil
}

func (s *stubRecordService) DeleteSavedPlace(_ context.Context, _ string, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubRecordService) ListSavedPlaces(_ context.Context, _ string) ([]models.RemoteSavedPlace, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.places, nil
}

func newStubServices(auth *stubAuthService, records *stubRecordService) *service.Services {
	return &service.Services{
		AuthService:   auth,
		RecordService: records,
	}
}
