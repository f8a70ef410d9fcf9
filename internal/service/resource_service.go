package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
)

type ResourceService interface {
	PostResource(ctx context.Context, req *model.PostResourceRequest) (*model.Resource, error)
	GetResource(ctx context.Context, resourceID uuid.UUID) (*model.Resource, error)
	FetchAll(ctx context.Context) ([]*model.Resource, error)
	PutResource(ctx context.Context, resourceID uuid.UUID, req *model.PutResourceRequest) (*model.Resource, error)
	DeleteResource(ctx context.Context, resourceID uuid.UUID) error
}

type resourceService struct {
	db       *gorm.DB
	repo     repository.ResourceRepository
	cache    *ListCache[*model.Resource]
	pageSize int
	logger   *slog.Logger
}

func NewResourceService(db *gorm.DB, repo repository.ResourceRepository, cache *ListCache[*model.Resource], pageSize int, logger *slog.Logger) ResourceService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &resourceService{db: db, repo: repo, cache: cache, pageSize: pageSize, logger: logger}
}

func (s *resourceService) PostResource(ctx context.Context, req *model.PostResourceRequest) (*model.Resource, error) {
	if req.Title == "" || req.FilePath == "" {
		return nil, model.ErrInvalidInput
	}

	res := &model.Resource{
		ResourceID:    uuid.New(),
		Title:         req.Title,
		Category:      req.Category,
		Description:   req.Description,
		Tags:          req.Tags,
		FilePath:      req.FilePath,
		ThumbnailPath: req.ThumbnailPath,
		FileSize:      req.FileSize,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, res)
	})
	if err != nil {
		s.logger.Error("Transaction failed for PostResource", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.cache.Invalidate()
	return res, nil
}

func (s *resourceService) GetResource(ctx context.Context, resourceID uuid.UUID) (*model.Resource, error) {
	return s.repo.FindByID(ctx, s.db, resourceID)
}

func (s *resourceService) FetchAll(ctx context.Context) ([]*model.Resource, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	var all []*model.Resource
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

func (s *resourceService) PutResource(ctx context.Context, resourceID uuid.UUID, req *model.PutResourceRequest) (*model.Resource, error) {
	var updated *model.Resource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, resourceID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":          req.Title,
			"category":       req.Category,
			"description":    req.Description,
			"tags":           req.Tags,
			"file_path":      req.FilePath,
			"thumbnail_path": req.ThumbnailPath,
			"file_size":      req.FileSize,
		}
		if err := s.repo.Update(ctx, tx, resourceID, updates); err != nil {
			return err
		}

		var err error
		updated, err = s.repo.FindByID(ctx, tx, resourceID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PutResource", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.cache.Invalidate()
	return updated, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, resourceID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, resourceID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Transaction failed for DeleteResource", slog.Any("error", err))
		return model.ErrInternalServer
	}

	s.cache.Invalidate()
	return nil
}
