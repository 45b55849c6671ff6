package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without identity
	router.Group(func(r chi.Router) {
		r.Get("/enroll", h.enroll)
		r.Get("/api/version", h.getServerVersion)
	})

	// owner-scoped routes
	router.Route("/contacts", func(r chi.Router) {
		r.Use(h.withIdentity)

		r.Get("/", h.listContacts)
		r.Post("/", h.createContact)
		r.Get("/{id}", h.getContact)
		r.Put("/{id}", h.updateContact)
		r.Delete("/{id}", h.deleteContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
