package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akhmetov/go-remind-sync/internal/adapter"
	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/internal/validators"
	"github.com/akhmetov/go-remind-sync/models"
)

type clientIdentityService struct {
	identities store.LocalIdentityRepository
	adapter    adapter.ServerAdapter
	validator  validators.Validator
	ids        IDGenerator
}

func NewClientIdentityService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, validator validators.Validator, ids IDGenerator) ClientIdentityService {
	return &clientIdentityService{
		identities: storages.IdentityRepository,
		adapter:    serverAdapter,
		validator:  validator,
		ids:        ids,
	}
}

// ResolveActiveIdentity reports who owns the local data right now. A fresh
// install has nobody: that is ErrNotSignedIn, and whether to mint a guest is
// the caller's call, not this method's.
func (s *clientIdentityService) ResolveActiveIdentity(ctx context.Context) (models.Identity, error) {
	identity, err := s.identities.GetCurrent(ctx)
	if err == nil {
		return identity, nil
	}
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.Identity{}, ErrNotSignedIn
	}

	return models.Identity{}, fmt.Errorf("resolve current identity: %w", err)
}

// CreateGuest returns the device's guest identity, made current. A device
// holds at most one guest: an existing guest row is reactivated, never
// duplicated.
func (s *clientIdentityService) CreateGuest(ctx context.Context) (models.Identity, error) {
	existing, err := s.identities.GetGuest(ctx)
	if err == nil {
		if err = s.identities.SetCurrent(ctx, existing.ID); err != nil {
			return models.Identity{}, fmt.Errorf("make guest identity current: %w", err)
		}
		existing.IsCurrent = true
		return existing, nil
	}
	if !errors.Is(err, store.ErrIdentityNotFound) {
		return models.Identity{}, fmt.Errorf("find guest identity: %w", err)
	}

	guest := models.Identity{
		ID:        models.GuestIDPrefix + s.ids.Generate(),
		IsGuest:   true,
		IsCurrent: true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.validator.Validate(ctx, guest); err != nil {
		return models.Identity{}, fmt.Errorf("validate guest identity: %w", err)
	}

	if err := s.identities.Save(ctx, guest); err != nil {
		return models.Identity{}, fmt.Errorf("save guest identity: %w", err)
	}

	if err := s.identities.SetCurrent(ctx, guest.ID); err != nil {
		return models.Identity{}, fmt.Errorf("make guest identity current: %w", err)
	}

	return guest, nil
}

func (s *clientIdentityService) IsSyncEligible(identity models.Identity) bool {
	return !identity.IsGuest && !models.IsGuestID(identity.ID)
}

func (s *clientIdentityService) Register(ctx context.Context, email, password, displayName string) (models.Identity, error) {
	account, err := s.registerOnServer(ctx, email, password, displayName)
	if err != nil {
		return models.Identity{}, err
	}

	if err := s.identities.Save(ctx, account); err != nil {
		return models.Identity{}, fmt.Errorf("save registered identity: %w", err)
	}

	if err := s.identities.SetCurrent(ctx, account.ID); err != nil {
		return models.Identity{}, fmt.Errorf("make registered identity current: %w", err)
	}

	return account, nil
}

func (s *clientIdentityService) Login(ctx context.Context, email, password string) (models.Identity, error) {
	user, err := s.adapter.Login(ctx, models.User{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, fmt.Errorf("login on server: %w", err)
	}

	account := identityFromUser(user)

	if err := s.identities.Save(ctx, account); err != nil {
		return models.Identity{}, fmt.Errorf("save logged-in identity: %w", err)
	}

	if err := s.identities.SetCurrent(ctx, account.ID); err != nil {
		return models.Identity{}, fmt.Errorf("make logged-in identity current: %w", err)
	}

	return account, nil
}

// MigrateGuestToAccount orders the steps so that a failure on either side is
// recoverable: the remote account is created first, and the local hand-over
// is one transaction. The guest rows survive any failure before commit.
func (s *clientIdentityService) MigrateGuestToAccount(ctx context.Context, email, password, displayName string) (models.Identity, error) {
	guest, err := s.identities.GetGuest(ctx)
	if err != nil {
		if errors.Is(err, store.ErrIdentityNotFound) {
			return models.Identity{}, ErrNoGuestToMigrate
		}
		return models.Identity{}, fmt.Errorf("find guest identity: %w", err)
	}

	account, err := s.registerOnServer(ctx, email, password, displayName)
	if err != nil {
		return models.Identity{}, err
	}

	if err := s.identities.MigrateOwner(ctx, guest.ID, account); err != nil {
		return models.Identity{}, fmt.Errorf("hand over guest data to account %s: %w", account.ID, err)
	}

	account.IsCurrent = true
	return account, nil
}

func (s *clientIdentityService) registerOnServer(ctx context.Context, email, password, displayName string) (models.Identity, error) {
	user, err := s.adapter.Register(ctx, models.User{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return models.Identity{}, ErrEmailTaken
		}
		return models.Identity{}, fmt.Errorf("register on server: %w", err)
	}

	account := identityFromUser(user)
	if err := s.validator.Validate(ctx, account); err != nil {
		return models.Identity{}, fmt.Errorf("validate account identity: %w", err)
	}

	return account, nil
}

func identityFromUser(user models.User) models.Identity {
	createdAt := user.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return models.Identity{
		ID:          user.ID,
		IsGuest:     false,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsPremium:   user.IsPremium,
		CreatedAt:   createdAt,
	}
}
