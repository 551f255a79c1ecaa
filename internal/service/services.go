package service

import (
	"github.com/akhmetov/go-remind-sync/internal/config"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/store"
)

type Services struct {
	AuthService   AuthService
	RecordService RecordService
}

func NewServices(storages *store.Storages, ids IDGenerator, cfg config.ServerAuth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, ids, cfg, logger),
		RecordService: NewRecordService(storages.RecordRepository, logger),
	}
}
