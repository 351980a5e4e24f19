// Package http implements the HTTP transport layer of the application.
// It provides the middleware chain, route handlers, and request/response
// utilities for the REST API. Panic recovery, authentication, tracing, and
// request/response logging concerns are all handled at this layer before
// requests are forwarded to the service layer.
package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/utils"
	"github.com/MKhiriev/go-user-management/models"
)

// exceptionGuard is the outermost middleware of the chain. It recovers from
// panics raised anywhere downstream — other middleware, route handlers, or
// the service layer — and converts them into a generic 500 response.
//
// The panic value and stack trace are logged server-side only; the client
// always receives the same fixed JSON body, so no internal detail can leak
// through an unexpected failure.
func (h *Handler) exceptionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().
					Any("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("unhandled panic during request processing")

				utils.WriteJSON(w, models.ErrorResponse{Error: MsgInternalServerError}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
