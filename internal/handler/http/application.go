package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

func (h *Handler) createApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var application models.Application
	if err := json.NewDecoder(r.Body).Decode(&application); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	application.UserID = userID

	created, err := h.services.ApplicationService.CreateApplication(ctx, application)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createApplication").Msg("application creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusCreated,
		Message: "application created",
		Data:    created,
	}, http.StatusCreated)
}

func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	applicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid application id")
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	details, err := h.services.ApplicationService.GetApplication(ctx, userID, applicationID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getApplication").Msg("application lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code: http.StatusOK,
		Data: details,
	}, http.StatusOK)
}

func (h *Handler) getUserApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	applications, err := h.services.ApplicationService.GetUserApplications(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserApplications").Msg("application listing failed")
		writeServiceError(w, err)
		return
	}

	response := models.Response{
		Code: http.StatusOK,
		Data: applications,
	}
	if len(applications) == 0 {
		response.Message = "no applications found"
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// getAllApplications serves the operator dashboard and is deliberately not
// scoped by user.
func (h *Handler) getAllApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	applications, err := h.services.ApplicationService.GetAllApplications(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllApplications").Msg("full application listing failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code: http.StatusOK,
		Data: applications,
	}, http.StatusOK)
}

func (h *Handler) updateApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	applicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid application id")
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	var patch models.ApplicationUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.ApplicationService.UpdateApplication(ctx, userID, applicationID, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateApplication").Msg("application update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "application updated",
		Data:    updated,
	}, http.StatusOK)
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	applicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid application id")
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	if err := h.services.ApplicationService.DeleteApplication(ctx, userID, applicationID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteApplication").Msg("application deletion failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "application deleted",
	}, http.StatusOK)
}
