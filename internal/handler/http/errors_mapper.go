package http

import (
	"errors"
	"net/http"

	"github.com/akhmetov/go-remind-sync/internal/service"
	"github.com/akhmetov/go-remind-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrRecordNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError maps a service/storage error to an HTTP status. Execution
// errors the classifier marks retryable become 503 so clients leave the
// failed entry in their queue and retry later.
func (h *Handler) statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	if errors.Is(err, store.ErrExecutingQuery) {
		if h.classifier != nil && h.classifier.Classify(err) == store.Retryable {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
