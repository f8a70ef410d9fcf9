package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/webutil"
)

type SettingHandler struct {
	service service.SettingService
	logger  *slog.Logger
}

func NewSettingHandler(s service.SettingService, logger *slog.Logger) *SettingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingHandler{service: s, logger: logger}
}

// GetImageAPIKey reports whether the image-host key is configured. The key
// itself is returned masked, never in full.
func (h *SettingHandler) GetImageAPIKey(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetImageAPIKey"))

	masked, err := h.service.GetMaskedImageAPIKey(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrAPIKeyMissing) {
			webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
				"configured": false,
				"key":        "",
			}, logger)
			return
		}
		logger.Error("Error reading image host key", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"configured": true,
		"key":        masked,
	}, logger)
}

// PutImageAPIKey stores the image-host key.
func (h *SettingHandler) PutImageAPIKey(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutImageAPIKey"))

	var req model.PutSettingRequest
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

	if err := h.service.PutImageAPIKey(r.Context(), req.Value); err != nil {
		logger.Error("Error saving image host key", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Image host key updated")
	w.WriteHeader(http.StatusNoContent)
}
