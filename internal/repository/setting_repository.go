package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/middleware"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// SettingRepository is the key/value store backing user-supplied
// configuration such as the image-host API key.
type SettingRepository interface {
	Get(ctx context.Context, db *gorm.DB, key string) (*model.Setting, error)
	Put(ctx context.Context, tx *gorm.DB, setting *model.Setting) error
}

type gormSettingRepository struct{}

func NewGormSettingRepository() SettingRepository {
	return &gormSettingRepository{}
}

func (r *gormSettingRepository) Get(ctx context.Context, db *gorm.DB, key string) (*model.Setting, error) {
	logger := middleware.GetLogger(ctx)
	var setting model.Setting
	result := db.WithContext(ctx).Where("key = ?", key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error reading setting from DB", "error", result.Error, "key", key)
		return nil, fmt.Errorf("gormSettingRepository.Get: %w", result.Error)
	}
	return &setting, nil
}

func (r *gormSettingRepository) Put(ctx context.Context, tx *gorm.DB, setting *model.Setting) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting)
	if result.Error != nil {
		logger.Error("Error upserting setting in DB", "error", result.Error, "key", setting.Key)
		return fmt.Errorf("gormSettingRepository.Put: %w", result.Error)
	}
	return nil
}
