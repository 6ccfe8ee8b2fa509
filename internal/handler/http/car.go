package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/service"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

func (h *Handler) createCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	// An owner declared in the body must match the authenticated user;
	// an omitted owner is filled in from the token.
	if car.UserID != uuid.Nil && car.UserID != userID {
		log.Error().Msg("declared car owner differs from the authenticated user")
		writeServiceError(w, service.ErrForbidden)
		return
	}
	car.UserID = userID

	created, err := h.services.CarService.CreateCar(ctx, car)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCar").Msg("car creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusCreated,
		Message: "car created",
		Data:    created,
	}, http.StatusCreated)
}

func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	carID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid car id")
		writeError(w, http.StatusBadRequest, "invalid car id")
		return
	}

	car, err := h.services.CarService.GetCar(ctx, userID, carID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCar").Msg("car lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code: http.StatusOK,
		Data: car,
	}, http.StatusOK)
}

func (h *Handler) getUserCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	cars, err := h.services.CarService.GetUserCars(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserCars").Msg("car listing failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code: http.StatusOK,
		Data: cars,
	}, http.StatusOK)
}

func (h *Handler) updateCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	carID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid car id")
		writeError(w, http.StatusBadRequest, "invalid car id")
		return
	}

	var patch models.CarUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.CarService.UpdateCar(ctx, userID, carID, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCar").Msg("car update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "car updated",
		Data:    updated,
	}, http.StatusOK)
}

func (h *Handler) deleteCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	carID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid car id")
		writeError(w, http.StatusBadRequest, "invalid car id")
		return
	}

	if err := h.services.CarService.DeleteCar(ctx, userID, carID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCar").Msg("car deletion failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "car deleted",
	}, http.StatusOK)
}
