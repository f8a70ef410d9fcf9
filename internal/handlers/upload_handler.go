package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/storage"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/webutil"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 32 << 20

type UploadHandler struct {
	uploader storage.ImageUploader
	settings service.SettingService
	logger   *slog.Logger
}

func NewUploadHandler(uploader storage.ImageUploader, settings service.SettingService, logger *slog.Logger) *UploadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadHandler{uploader: uploader, settings: settings, logger: logger}
}

// PostImage forwards a multipart image upload to the external host and
// returns the hosted URL. The host API key is read from settings on every
// call so a key saved mid-session takes effect immediately.
func (h *UploadHandler) PostImage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostImage"))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request is not a valid multipart upload.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		logger.Warn("Missing image file in upload", slog.String("error", err.Error()))
		appErr := model.NewAppError("MISSING_IMAGE_FILE", "An image file part named 'image' is required.", "image", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	apiKey, err := h.settings.GetImageAPIKey(r.Context())
	if err != nil {
		logger.Warn("Image host API key unavailable", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	url, err := h.uploader.Upload(r.Context(), apiKey, header.Filename, file)
	if err != nil {
		logger.Error("Error uploading image to host", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Image uploaded", slog.String("filename", header.Filename))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]string{"url": url}, logger)
}
