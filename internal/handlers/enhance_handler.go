package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/webutil"
)

type EnhanceHandler struct {
	service service.EnhanceService
	logger  *slog.Logger
}

func NewEnhanceHandler(s service.EnhanceService, logger *slog.Logger) *EnhanceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnhanceHandler{service: s, logger: logger}
}

// PostBatch runs the sequential bulk-enhancement loop over the selected
// records and returns the final summary.
func (h *EnhanceHandler) PostBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostBatch"))

	var req model.EnhanceBatchRequest
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

	summary, err := h.service.EnhanceBatch(r.Context(), &req)
	if err != nil {
		logger.Error("Error running enhancement batch", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Enhancement batch completed",
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("failed", summary.Failed),
	)
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

// PostPreview returns the provider's proposal for one record without
// persisting anything.
func (h *EnhanceHandler) PostPreview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostPreview"))

	var req model.PreviewRequest
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

	proposal, err := h.service.Preview(r.Context(), &req)
	if err != nil {
		logger.Error("Error previewing enhancement", slog.Any("error", err), slog.String("vocab_id", req.ID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, proposal, logger)
}

// PostApply persists previewed data verbatim and returns the updated entry.
func (h *EnhanceHandler) PostApply(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostApply"))

	var req model.ApplyRequest
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

	vocab, err := h.service.Apply(r.Context(), &req)
	if err != nil {
		logger.Error("Error applying enhancement", slog.Any("error", err), slog.String("vocab_id", req.ID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Enhancement applied", slog.String("vocab_id", req.ID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}
