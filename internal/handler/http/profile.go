package http

import (
	"encoding/json"
	"net/http"

	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	user, err := h.services.UserService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("profile lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Code: http.StatusOK,
		User: user,
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var patch models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.UserService.UpdateProfile(ctx, userID, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("profile update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Code:    http.StatusOK,
		Message: "profile updated",
		User:    updated,
	}, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.UserService.DeleteProfile(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProfile").Msg("profile deletion failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "profile deleted",
	}, http.StatusOK)
}
