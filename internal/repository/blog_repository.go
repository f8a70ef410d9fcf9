package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/middleware"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

type BlogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, blog *model.Blog) error
	FindByID(ctx context.Context, db *gorm.DB, blogID uuid.UUID) (*model.Blog, error)
	FindRange(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Blog, error)
	Update(ctx context.Context, tx *gorm.DB, blogID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, blogID uuid.UUID) error
	CheckSlugExists(ctx context.Context, db *gorm.DB, slug string, excludeID *uuid.UUID) (bool, error)
}

type gormBlogRepository struct{}

func NewGormBlogRepository() BlogRepository {
	return &gormBlogRepository{}
}

func (r *gormBlogRepository) Create(ctx context.Context, tx *gorm.DB, blog *model.Blog) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(blog)
	if result.Error != nil {
		logger.Error("Error creating blog post in DB", "error", result.Error, "slug", blog.Slug)
		return fmt.Errorf("gormBlogRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBlogRepository) FindByID(ctx context.Context, db *gorm.DB, blogID uuid.UUID) (*model.Blog, error) {
	logger := middleware.GetLogger(ctx)
	var blog model.Blog
	result := db.WithContext(ctx).Where("blog_id = ?", blogID).First(&blog)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding blog post by ID in DB", "error", result.Error, "blog_id", blogID.String())
		return nil, fmt.Errorf("gormBlogRepository.FindByID: %w", result.Error)
	}
	return &blog, nil
}

func (r *gormBlogRepository) FindRange(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Blog, error) {
	logger := middleware.GetLogger(ctx)
	var blogs []*model.Blog
	result := db.WithContext(ctx).
		Order("created_at DESC, blog_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&blogs)
	if result.Error != nil {
		logger.Error("Error range-querying blog posts in DB", "error", result.Error, "offset", offset, "limit", limit)
		return nil, fmt.Errorf("gormBlogRepository.FindRange: %w", result.Error)
	}
	return blogs, nil
}

func (r *gormBlogRepository) Update(ctx context.Context, tx *gorm.DB, blogID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Blog{}).Where("blog_id = ?", blogID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating blog post in DB", "error", result.Error, "blog_id", blogID.String())
		return fmt.Errorf("gormBlogRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBlogRepository) Delete(ctx context.Context, tx *gorm.DB, blogID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("blog_id = ?", blogID).Delete(&model.Blog{})
	if result.Error != nil {
		logger.Error("Error deleting blog post in DB", "error", result.Error, "blog_id", blogID.String())
		return fmt.Errorf("gormBlogRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBlogRepository) CheckSlugExists(ctx context.Context, db *gorm.DB, slug string, excludeID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Blog{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("blog_id != ?", *excludeID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking slug existence in DB", "error", result.Error, "slug", slug)
		return false, fmt.Errorf("gormBlogRepository.CheckSlugExists: %w", result.Error)
	}
	return count > 0, nil
}
