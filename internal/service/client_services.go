package service

import (
	"github.com/akhmetov/go-remind-sync/internal/adapter"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/internal/validators"
)

type ClientServices struct {
	ReminderService   ClientReminderService
	CategoryService   ClientCategoryService
	SavedPlaceService ClientSavedPlaceService
	IdentityService   ClientIdentityService
	SyncService       ClientSyncService
	SyncJob           ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, gate ConnectivityGate, ids IDGenerator, log *logger.Logger) *ClientServices {
	validator := validators.NewRecordValidator()
	syncSvc := NewClientSyncService(localStore, serverAdapter, gate, log)

	return &ClientServices{
		ReminderService:   NewClientReminderService(localStore, validator, ids, log),
		CategoryService:   NewClientCategoryService(localStore, validator, ids, log),
		SavedPlaceService: NewClientSavedPlaceService(localStore, validator, ids, log),
		IdentityService:   NewClientIdentityService(localStore, serverAdapter, validator, ids),
		SyncService:       syncSvc,
		SyncJob:           NewClientSyncJob(syncSvc),
	}
}
