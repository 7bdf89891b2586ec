package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)
		r.Get("/api/users", h.listUsers)
		r.Get("/api/version/", h.getServerVersion)
	})

	// the profile page is public; a session only adds viewer-specific flags
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Get("/api/profile/{username}", h.viewProfile)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Delete("/api/user", h.deleteAccount)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.addNote)
		r.Post("/api/notes/{noteID}/like", h.toggleNoteLike)
		r.Post("/api/notes/{noteID}/comments", h.addNoteComment)

		r.Post("/api/profile/{username}/like", h.toggleProfileLike)
		r.Post("/api/profile/{username}/comments", h.commentProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
