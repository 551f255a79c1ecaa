package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// record sync routes, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/reminders", h.upsertReminder)
		r.Delete("/api/reminders/{id}", h.deleteReminder)
		r.Get("/api/reminders", h.listReminders)

		r.Put("/api/categories", h.upsertCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)
		r.Get("/api/categories", h.listCategories)

		r.Put("/api/places", h.upsertSavedPlace)
		r.Delete("/api/places/{id}", h.deleteSavedPlace)
		r.Get("/api/places", h.listSavedPlaces)
	})

	return router
}
