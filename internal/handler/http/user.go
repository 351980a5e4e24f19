package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/store"
	"github.com/MKhiriev/go-user-management/internal/utils"
	"github.com/MKhiriev/go-user-management/internal/validators"
	"github.com/MKhiriev/go-user-management/models"

	"github.com/go-chi/chi/v5"
)

// getAllUsers handles GET /user and returns the full list as a JSON array.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users := h.services.UserService.GetAll(r.Context())
	utils.WriteJSON(w, users, http.StatusOK)
}

// getUserByID handles GET /user/{id}. Both a non-numeric id and an unknown
// id map to a 404 with an empty body.
func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug().Str("id", chi.URLParam(r, "id")).Msg("non-numeric user id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Err(err).Int("id", id).Msg("unexpected error occurred during user lookup")
		utils.WriteJSON(w, models.ErrorResponse{Error: MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// createUser handles POST /user. On success it responds 201 with the stored
// user (server-assigned id) and a Location header pointing at the new
// resource. Validation failures become 400 with the rule's reason verbatim.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Create(r.Context(), user)
	if err != nil {
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			utils.WriteJSON(w, models.ErrorResponse{Error: validationErr.Reason}, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user creation")
		utils.WriteJSON(w, models.ErrorResponse{Error: MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int("id", created.ID).Msg("user created")

	w.Header().Set("Location", fmt.Sprintf("/user/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateUser handles PUT /user/{id}. The id from the path wins over any id
// present in the body. A missing user is reported before validation runs.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug().Str("id", chi.URLParam(r, "id")).Msg("non-numeric user id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.Update(r.Context(), id, user); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			return
		default:
			var validationErr *validators.ValidationError
			if errors.As(err, &validationErr) {
				utils.WriteJSON(w, models.ErrorResponse{Error: validationErr.Reason}, http.StatusBadRequest)
				return
			}
			log.Err(err).Int("id", id).Msg("unexpected error occurred during user update")
			utils.WriteJSON(w, models.ErrorResponse{Error: MsgInternalServerError}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.UserActionResponse{
		Message: "Succesfully updated user",
		ID:      id,
	}, http.StatusOK)
}

// deleteUser handles DELETE /user/{id}.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug().Str("id", chi.URLParam(r, "id")).Msg("non-numeric user id")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Err(err).Int("id", id).Msg("unexpected error occurred during user deletion")
		utils.WriteJSON(w, models.ErrorResponse{Error: MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserActionResponse{
		Message: "Succesfully deleted user",
		ID:      id,
	}, http.StatusOK)
}
