package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Data: app.MsgHello}, http.StatusOK)
}

// register creates an account and returns a token for it. A taken email is
// answered with 200 and "error": true.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if errors.Is(err, service.ErrUserAlreadyExists) {
		log.Info().Msg("email already registered")
		utils.WriteError(w, app.MsgUserAlreadyExists, http.StatusOK)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Response:    models.Response{Message: app.MsgRegistrationSuccessful},
		AccessToken: token.SignedString,
		User:        &registeredUser,
	}, http.StatusOK)
}

// login answers bad credentials with 400, not 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		log.Info().Msg("invalid credentials")
		utils.WriteError(w, app.MsgInvalidCredentials, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Response:    models.Response{Message: app.MsgLoginSuccessful},
		AccessToken: token.SignedString,
		Email:       foundUser.Email,
	}, http.StatusOK)
}

// getUser returns the account of the token owner. If the account no longer
// exists the response is a bare 401.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeNoUserID(w, r)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		logger.FromRequest(r).Info().Str("user_id", userID).Msg("token owner no longer exists")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: &user}, http.StatusOK)
}

func writeNoUserID(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Err(ErrNoUserIDInContext).Send()
	utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
}
