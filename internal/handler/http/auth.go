package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/service"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, registration)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, "invalid data provided")
		case errors.Is(err, service.ErrUserAlreadyExists):
			log.Err(err).Msg("login or email already exists")
			writeError(w, http.StatusConflict, "login or email already exists")
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	utils.WriteJSON(w, models.RegistrationResponse{
		Code:    http.StatusCreated,
		Message: "user registered",
		ID:      registeredUser.ID.String(),
		Token:   token.String(),
	}, http.StatusCreated)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, "invalid data provided")
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			writeError(w, http.StatusNotFound, "no user was found")
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			writeError(w, http.StatusUnauthorized, "wrong password")
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	log.Debug().Str("id", foundUser.ID.String()).Str("login", foundUser.Login).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Code:   http.StatusAccepted,
		UserID: foundUser.ID.String(),
		Token:  token.String(),
	}, http.StatusAccepted)
}
