package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/utils"

	"github.com/rs/zerolog"
)

// withLogging is the innermost middleware before route dispatch. It logs the
// request line up front, lets the handler write into a buffering
// [responseWriter], logs the completed response — status, size, and body —
// and only then relays the buffered bytes to the client unchanged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		// the auth stage runs first, so authenticated requests carry the
		// account name in the context; /login does not
		if username, ok := utils.GetUsernameFromContext(r.Context()); ok {
			log.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("username", username)
			})
		}

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Msg("request received")

		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size()).
			Str("body", lw.body.String()).
			Msg("response sent")

		if err := lw.flush(); err != nil {
			log.Err(err).Msg("error relaying buffered response to client")
		}
	})
}
