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

type BlogHandler struct {
	service service.BlogService
	logger  *slog.Logger
}

func NewBlogHandler(s service.BlogService, logger *slog.Logger) *BlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlogHandler{service: s, logger: logger}
}

func (h *BlogHandler) PostBlog(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostBlog"))

	var req model.PostBlogRequest
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

	blog, err := h.service.PostBlog(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating blog post in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Blog post created", slog.String("blog_id", blog.BlogID.String()), slog.String("slug", blog.Slug))
	webutil.RespondWithJSON(w, http.StatusCreated, blog, logger)
}

func (h *BlogHandler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBlogs"))

	blogs, err := h.service.FetchAll(r.Context())
	if err != nil {
		logger.Error("Error listing blog posts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if blogs == nil {
		blogs = []*model.Blog{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, blogs, logger)
}

func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBlog"))

	blogID, err := uuid.Parse(chi.URLParam(r, "blog_id"))
	if err != nil {
		logger.Warn("Invalid blog ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "blog_id is not a valid id.", "blog_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	blog, err := h.service.GetBlog(r.Context(), blogID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error getting blog post from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, blog, logger)
}

func (h *BlogHandler) PutBlog(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutBlog"))

	blogID, err := uuid.Parse(chi.URLParam(r, "blog_id"))
	if err != nil {
		logger.Warn("Invalid blog ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "blog_id is not a valid id.", "blog_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutBlogRequest
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

	blog, err := h.service.PutBlog(r.Context(), blogID, &req)
	if err != nil {
		logger.Error("Error updating blog post in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Blog post updated", slog.String("blog_id", blogID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, blog, logger)
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteBlog"))

	blogID, err := uuid.Parse(chi.URLParam(r, "blog_id"))
	if err != nil {
		logger.Warn("Invalid blog ID in URL", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "blog_id is not a valid id.", "blog_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteBlog(r.Context(), blogID); err != nil {
		logger.Error("Error deleting blog post in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Blog post deleted", slog.String("blog_id", blogID.String()))
	w.WriteHeader(http.StatusNoContent)
}
