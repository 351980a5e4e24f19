package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/utils"
	"github.com/MKhiriev/go-user-management/models"
)

// loginPath is the sole route exempt from bearer-token authentication.
const loginPath = "/login"

// bearerPrefix is the expected scheme prefix of the Authorization header.
const bearerPrefix = "Bearer "

// auth is the middleware that enforces JWT bearer-token authentication on
// every request except POST /login.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success —
// stores the authenticated account name in the request context under
// [utils.UsernameCtxKey] before delegating to the next handler.
//
// Rejections short-circuit the chain with HTTP 401 and one of two fixed JSON
// bodies:
//   - the header is absent, blank, or does not start with "Bearer " →
//     [MsgUnauthorizedMissingToken];
//   - the token fails verification (bad signature, wrong issuer or audience,
//     expired, malformed) → [MsgUnauthorizedInvalidToken].
//
// No downstream stage — including response logging and route dispatch — runs
// for a rejected request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Allow anonymous access to the login endpoint.
		if strings.EqualFold(r.URL.Path, loginPath) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug().Str("uri", r.RequestURI).Msg("request rejected: missing or malformed Authorization header")
			utils.WriteJSON(w, models.ErrorResponse{Error: MsgUnauthorizedMissingToken}, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("uri", r.RequestURI).Msg("request rejected: malformed Authorization header")
			utils.WriteJSON(w, models.ErrorResponse{Error: MsgUnauthorizedMissingToken}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Str("uri", r.RequestURI).Msg("request rejected: token verification failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: MsgUnauthorizedInvalidToken}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated account name in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
