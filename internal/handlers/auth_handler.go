package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{service: s, logger: logger}
}

// PostLogin exchanges email/password credentials for a session token.
func (h *AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLogin"))

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Login attempt failed", slog.String("email", req.Email))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login succeeded", slog.String("email", req.Email))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
