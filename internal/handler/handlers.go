package handler

import (
	"github.com/akhmetov/go-remind-sync/internal/config"
	"github.com/akhmetov/go-remind-sync/internal/handler/http"
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/service"
	"github.com/akhmetov/go-remind-sync/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, classifier store.ErrorClassifier, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, classifier, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
