package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
)

// SettingService manages the user-supplied image-host API key. The key is
// read from the store at call time, never cached in memory.
type SettingService interface {
	GetImageAPIKey(ctx context.Context) (string, error)
	// GetMaskedImageAPIKey returns the key with all but the last four
	// characters replaced, for display.
	GetMaskedImageAPIKey(ctx context.Context) (string, error)
	PutImageAPIKey(ctx context.Context, value string) error
}

type settingService struct {
	db     *gorm.DB
	repo   repository.SettingRepository
	logger *slog.Logger
}

func NewSettingService(db *gorm.DB, repo repository.SettingRepository, logger *slog.Logger) SettingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &settingService{db: db, repo: repo, logger: logger}
}

func (s *settingService) GetImageAPIKey(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx, s.db, model.SettingKeyImageAPIKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrAPIKeyMissing
		}
		return "", model.ErrInternalServer
	}
	if setting.Value == "" {
		return "", model.ErrAPIKeyMissing
	}
	return setting.Value, nil
}

func (s *settingService) GetMaskedImageAPIKey(ctx context.Context) (string, error) {
	key, err := s.GetImageAPIKey(ctx)
	if err != nil {
		return "", err
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key)), nil
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:], nil
}

func (s *settingService) PutImageAPIKey(ctx context.Context, value string) error {
	if value == "" {
		return model.ErrInvalidInput
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Put(ctx, tx, &model.Setting{Key: model.SettingKeyImageAPIKey, Value: value})
	})
	if err != nil {
		s.logger.Error("Transaction failed for PutImageAPIKey", slog.Any("error", err))
		return model.ErrInternalServer
	}
	return nil
}
