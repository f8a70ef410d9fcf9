package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/webutil"
)

type ResourceHandler struct {
	service service.ResourceService
	logger  *slog.Logger
}

func NewResourceHandler(s service.ResourceService, logger *slog.Logger) *ResourceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceHandler{service: s, logger: logger}
}

func (h *ResourceHandler) PostResource(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostResource"))

	var req model.PostResourceRequest
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

	res, err := h.service.PostResource(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating resource in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Resource created", slog.String("resource_id", res.ResourceID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, res, logger)
}

func (h *ResourceHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetResources"))

	resources, err := h.service.FetchAll(r.Context())
	if err != nil {
		logger.Error("Error listing resources in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if resources == nil {
		resources = []*model.Resource{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, resources, logger)
}

func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetResource"))

	resourceID, err := uuid.Parse(chi.URLParam(r, "resource_id"))
	if err != nil {
		logger.Warn("Invalid resource ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "resource_id is not a valid id.", "resource_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	res, err := h.service.GetResource(r.Context(), resourceID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error getting resource from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

func (h *ResourceHandler) PutResource(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutResource"))

	resourceID, err := uuid.Parse(chi.URLParam(r, "resource_id"))
	if err != nil {
		logger.Warn("Invalid resource ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "resource_id is not a valid id.", "resource_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutResourceRequest
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

	res, err := h.service.PutResource(r.Context(), resourceID, &req)
	if err != nil {
		logger.Error("Error updating resource in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Resource updated", slog.String("resource_id", resourceID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteResource"))

	resourceID, err := uuid.Parse(chi.URLParam(r, "resource_id"))
	if err != nil {
		logger.Warn("Invalid resource ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "resource_id is not a valid id.", "resource_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteResource(r.Context(), resourceID); err != nil {
		logger.Error("Error deleting resource in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Resource deleted", slog.String("resource_id", resourceID.String()))
	w.WriteHeader(http.StatusNoContent)
}
