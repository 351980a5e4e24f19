package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/service"
	"github.com/MKhiriev/go-user-management/internal/utils"
	"github.com/MKhiriev/go-user-management/models"
)

// login handles POST /login.
//
// It decodes the credential pair, verifies it via the auth service, and on
// success responds 200 with a fixed message and a freshly issued JWT.
// Any credential mismatch yields a bare 401 with an empty body — no JSON,
// no detail about which part of the pair was wrong.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var login models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	log.Debug().Str("username", login.Username).Msg("generating JWT token for user")

	if err := h.services.AuthService.Login(ctx, login); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCredentials) || errors.Is(err, service.ErrInvalidDataProvided):
			log.Debug().Str("username", login.Username).Msg("login rejected")
			w.WriteHeader(http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSON(w, models.ErrorResponse{Error: MsgInternalServerError}, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, login.Username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("username", login.Username).Msg("login successful")

	utils.WriteJSON(w, models.LoginResponse{
		Message: "Login successful",
		Token:   token.SignedString,
	}, http.StatusOK)
}
