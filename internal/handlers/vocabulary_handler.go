package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/webutil"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{service: s, logger: logger}
}

// PostVocabulary creates a new vocabulary entry.
func (h *VocabularyHandler) PostVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVocabulary"))

	var req model.PostVocabularyRequest
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

	vocab, err := h.service.PostVocabulary(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating vocabulary entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary entry created", slog.String("vocab_id", vocab.VocabID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, vocab, logger)
}

// GetVocabularyList serves the filtered, windowed entry list.
func (h *VocabularyHandler) GetVocabularyList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabularyList"))

	query := &model.VocabularyListQuery{
		Search:         r.URL.Query().Get("search"),
		Theme:          r.URL.Query().Get("theme"),
		MissingFilter:  r.URL.Query().Get("missing"),
		Width:          intQueryParam(r, "width"),
		ScrollTop:      intQueryParam(r, "scroll_top"),
		ViewportHeight: intQueryParam(r, "viewport"),
	}

	resp, err := h.service.ListVocabulary(r.Context(), query)
	if err != nil {
		logger.Error("Error listing vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary listed", slog.Int("total", resp.Total), slog.Int("filtered", resp.Filtered))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetVocabulary serves one entry by id.
func (h *VocabularyHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocab_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "vocab_id is not a valid id.", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	vocab, err := h.service.GetVocabulary(r.Context(), vocabID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Vocabulary entry not found", slog.String("vocab_id", vocabID.String()))
		} else {
			logger.Error("Error getting vocabulary entry from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// PutVocabulary replaces one entry.
func (h *VocabularyHandler) PutVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutVocabulary"))

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocab_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "vocab_id is not a valid id.", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutVocabularyRequest
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

	vocab, err := h.service.PutVocabulary(r.Context(), vocabID, &req)
	if err != nil {
		logger.Error("Error updating vocabulary entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary entry updated", slog.String("vocab_id", vocabID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// DeleteVocabulary removes one entry.
func (h *VocabularyHandler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteVocabulary"))

	vocabID, err := uuid.Parse(chi.URLParam(r, "vocab_id"))
	if err != nil {
		logger.Warn("Invalid vocabulary ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "vocab_id is not a valid id.", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteVocabulary(r.Context(), vocabID); err != nil {
		logger.Error("Error deleting vocabulary entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary entry deleted", slog.String("vocab_id", vocabID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// PostVocabularyBulk inserts a batch of entries in one transaction.
func (h *VocabularyHandler) PostVocabularyBulk(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVocabularyBulk"))

	var req model.BulkVocabularyRequest
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

	created, err := h.service.BulkCreate(r.Context(), &req)
	if err != nil {
		logger.Error("Error bulk-creating vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary bulk upload finished", slog.Int("count", len(created)))
	webutil.RespondWithJSON(w, http.StatusCreated, created, logger)
}

func intQueryParam(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
