// Package http implements the HTTP transport layer of the sync server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/service"
	"github.com/akhmetov/go-remind-sync/internal/store"
)

type Handler struct {
	services *service.Services

	// classifier decides whether a failed storage operation is transient.
	// Retryable failures surface as 503 so clients keep the queue entry
	// alive and retry later.
	classifier store.ErrorClassifier

	logger *logger.Logger
}

func NewHandler(services *service.Services, classifier store.ErrorClassifier, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		classifier: classifier,
		logger:     logger,
	}
}
