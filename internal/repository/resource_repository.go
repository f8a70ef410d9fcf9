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

type ResourceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, res *model.Resource) error
	FindByID(ctx context.Context, db *gorm.DB, resourceID uuid.UUID) (*model.Resource, error)
	FindRange(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Resource, error)
	Update(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error
}

type gormResourceRepository struct{}

func NewGormResourceRepository() ResourceRepository {
	return &gormResourceRepository{}
}

func (r *gormResourceRepository) Create(ctx context.Context, tx *gorm.DB, res *model.Resource) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(res)
	if result.Error != nil {
		logger.Error("Error creating resource in DB", "error", result.Error, "title", res.Title)
		return fmt.Errorf("gormResourceRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormResourceRepository) FindByID(ctx context.Context, db *gorm.DB, resourceID uuid.UUID) (*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	var res model.Resource
	result := db.WithContext(ctx).Where("resource_id = ?", resourceID).First(&res)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding resource by ID in DB", "error", result.Error, "resource_id", resourceID.String())
		return nil, fmt.Errorf("gormResourceRepository.FindByID: %w", result.Error)
	}
	return &res, nil
}

func (r *gormResourceRepository) FindRange(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	var resources []*model.Resource
	result := db.WithContext(ctx).
		Order("created_at DESC, resource_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&resources)
	if result.Error != nil {
		logger.Error("Error range-querying resources in DB", "error", result.Error, "offset", offset, "limit", limit)
		return nil, fmt.Errorf("gormResourceRepository.FindRange: %w", result.Error)
	}
	return resources, nil
}

func (r *gormResourceRepository) Update(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Resource{}).Where("resource_id = ?", resourceID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating resource in DB", "error", result.Error, "resource_id", resourceID.String())
		return fmt.Errorf("gormResourceRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormResourceRepository) Delete(ctx context.Context, tx *gorm.DB, resourceID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("resource_id = ?", resourceID).Delete(&model.Resource{})
	if result.Error != nil {
		logger.Error("Error deleting resource in DB", "error", result.Error, "resource_id", resourceID.String())
		return fmt.Errorf("gormResourceRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
