package http

import (
	"github.com/go-chi/chi/v5"
)

// Init assembles the router with the full middleware chain and all routes.
//
// Middleware composition order is fixed and significant (outermost first):
//
//	exceptionGuard → withTraceID → auth → withLogging → handler
//
// The exception guard must be outermost so that a panic anywhere below it —
// including inside other middleware — still yields a clean 500. The auth
// check sits above logging, so rejected requests never reach the response
// logger. Logging is innermost before dispatch so that it observes exactly
// what the handler produced.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.exceptionGuard, h.withTraceID, h.auth, h.withLogging)

	router.Post("/login", h.login)

	router.Get("/user", h.getAllUsers)
	router.Post("/user", h.createUser)
	router.Get("/user/{id}", h.getUserByID)
	router.Put("/user/{id}", h.updateUser)
	router.Delete("/user/{id}", h.deleteUser)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
