package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
)

type BlogService interface {
	PostBlog(ctx context.Context, req *model.PostBlogRequest) (*model.Blog, error)
	GetBlog(ctx context.Context, blogID uuid.UUID) (*model.Blog, error)
	FetchAll(ctx context.Context) ([]*model.Blog, error)
	PutBlog(ctx context.Context, blogID uuid.UUID, req *model.PutBlogRequest) (*model.Blog, error)
	DeleteBlog(ctx context.Context, blogID uuid.UUID) error
}

type blogService struct {
	db       *gorm.DB
	repo     repository.BlogRepository
	cache    *ListCache[*model.Blog]
	pageSize int
	logger   *slog.Logger
}

func NewBlogService(db *gorm.DB, repo repository.BlogRepository, cache *ListCache[*model.Blog], pageSize int, logger *slog.Logger) BlogService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &blogService{db: db, repo: repo, cache: cache, pageSize: pageSize, logger: logger}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title: lowercase, runs of
// non-alphanumeric characters collapse to a single hyphen, no leading or
// trailing hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *blogService) PostBlog(ctx context.Context, req *model.PostBlogRequest) (*model.Blog, error) {
	if req.Title == "" || req.Content == "" {
		return nil, model.ErrInvalidInput
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, model.NewAppError("INVALID_SLUG", "the title produces an empty slug", "slug", model.ErrInvalidInput)
	}

	var created *model.Blog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.repo.CheckSlugExists(ctx, tx, slug, nil)
		if err != nil {
			return model.ErrInternalServer
		}
		if exists {
			return model.ErrConflict
		}

		blog := &model.Blog{
			BlogID:       uuid.New(),
			Title:        req.Title,
			Slug:         slug,
			Content:      req.Content,
			ThumbnailURL: req.ThumbnailURL,
			Category:     req.Category,
			Tags:         req.Tags,
			PublishedAt:  req.PublishedAt,
		}
		if err := s.repo.Create(ctx, tx, blog); err != nil {
			return model.ErrInternalServer
		}
		created = blog
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PostBlog", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.cache.Invalidate()
	return created, nil
}

func (s *blogService) GetBlog(ctx context.Context, blogID uuid.UUID) (*model.Blog, error) {
	return s.repo.FindByID(ctx, s.db, blogID)
}

func (s *blogService) FetchAll(ctx context.Context) ([]*model.Blog, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	var all []*model.Blog
	for offset := 0; ; offset += s.pageSize {
		page, err := s.repo.FindRange(ctx, s.db, offset, s.pageSize)
		if err != nil {
			return nil, model.ErrInternalServer
		}
		all = append(all, page...)
		if len(page) < s.pageSize {
			break
		}
	}

	s.cache.Set(all)
	return all, nil
}

func (s *blogService) PutBlog(ctx context.Context, blogID uuid.UUID, req *model.PutBlogRequest) (*model.Blog, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, model.NewAppError("INVALID_SLUG", "the title produces an empty slug", "slug", model.ErrInvalidInput)
	}

	var updated *model.Blog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByID(ctx, tx, blogID)
		if err != nil {
			return err
		}

		if slug != current.Slug {
			exists, err := s.repo.CheckSlugExists(ctx, tx, slug, &blogID)
			if err != nil {
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
		}

		updates := map[string]interface{}{
			"title":         req.Title,
			"slug":          slug,
			"content":       req.Content,
			"thumbnail_url": req.ThumbnailURL,
			"category":      req.Category,
			"tags":          req.Tags,
			"published_at":  req.PublishedAt,
		}
		if err := s.repo.Update(ctx, tx, blogID, updates); err != nil {
			return err
		}

		updated, err = s.repo.FindByID(ctx, tx, blogID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PutBlog", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.cache.Invalidate()
	return updated, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, blogID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, blogID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Transaction failed for DeleteBlog", slog.Any("error", err))
		return model.ErrInternalServer
	}

	s.cache.Invalidate()
	return nil
}
