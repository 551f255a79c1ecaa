package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akhmetov/go-remind-sync/internal/logger"
	"github.com/akhmetov/go-remind-sync/internal/utils"
	"github.com/akhmetov/go-remind-sync/models"
)

// ownerFromContext pulls the authenticated user id placed there by the auth
// middleware. A missing id means the route was wired without auth, which is a
// programming error surfaced as 401.
func ownerFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return ownerID, true
}

func (h *Handler) upsertReminder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	var remote models.RemoteReminder
	if err := json.NewDecoder(r.Body).Decode(&remote); err != nil {
		log.Err(err).Str("func", "*Handler.upsertReminder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.UpsertReminder(r.Context(), ownerID, remote); err != nil {
		log.Err(err).Str("func", "*Handler.upsertReminder").Msg("error upserting reminder")
		http.Error(w, "error upserting reminder", h.statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing record id", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.DeleteReminder(r.Context(), ownerID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteReminder").Str("id", id).Msg("error deleting reminder")
		http.Error(w, "error deleting reminder", h.statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	reminders, err := h.services.RecordService.ListReminders(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listReminders").Msg("error listing reminders")
		http.Error(w, "error listing reminders", h.statusFromError(err))
		return
	}
	if reminders == nil {
		reminders = []models.RemoteReminder{}
	}

	utils.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) upsertCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	var remote models.RemoteCategory
	if err := json.NewDecoder(r.Body).Decode(&remote); err != nil {
		log.Err(err).Str("func", "*Handler.upsertCategory").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.UpsertCategory(r.Context(), ownerID, remote); err != nil {
		log.Err(err).Str("func", "*Handler.upsertCategory").Msg("error upserting category")
		http.Error(w, "error upserting category", h.statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing record id", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.DeleteCategory(r.Context(), ownerID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCategory").Str("id", id).Msg("error deleting category")
		http.Error(w, "error deleting category", h.statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	categories, err := h.services.RecordService.ListCategories(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCategories").Msg("error listing categories")
		http.Error(w, "error listing categories", h.statusFromError(err))
		return
	}
	if categories == nil {
		categories = []models.RemoteCategory{}
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) upsertSavedPlace(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	var remote models.RemoteSavedPlace
	if err := json.NewDecoder(r.Body).Decode(&remote); err != nil {
		log.Err(err).Str("func", "*Handler.upsertSavedPlace").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.UpsertSavedPlace(r.Context(), ownerID, remote); err != nil {
		log.Err(err).Str("func", "*Handler.upsertSavedPlace").Msg("error upserting saved place")
		http.Error(w, "error upserting saved place", h.statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteSavedPlace(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing record id", http.StatusBadRequest)
		return
	}

	if err := h.services.RecordService.DeleteSavedPlace(r.Context(), ownerID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteSavedPlace").Str("id", id).Msg("error deleting saved place")
		http.Error(w, "error deleting saved place", h.statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listSavedPlaces(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	places, err := h.services.RecordService.ListSavedPlaces(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSavedPlaces").Msg("error listing saved places")
		http.Error(w, "error listing saved places", h.statusFromError(err))
		return
	}
	if places == nil {
		places = []models.RemoteSavedPlace{}
	}

	utils.WriteJSON(w, places, http.StatusOK)
}
