package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/webutil"
)

type PracticeHandler struct {
	service service.PracticeService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{service: s, logger: logger}
}

// GetPracticeBatch serves a random study batch. The optional limit query
// parameter is clamped by the service.
func (h *PracticeHandler) GetPracticeBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPracticeBatch"))

	limit := intQueryParam(r, "limit")

	entries, err := h.service.GetPracticeBatch(r.Context(), limit)
	if err != nil {
		logger.Error("Error fetching practice batch in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.Vocabulary{}
	}
	logger.Info("Practice batch served", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}
