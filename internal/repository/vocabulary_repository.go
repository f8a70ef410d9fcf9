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

// VocabularyRepository is the range-query/insert/update/delete surface over
// the vocabulary table.
type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error
	FindByID(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) (*model.Vocabulary, error)
	// FindRange returns rows [offset, offset+limit) ordered by creation time.
	// Page boundaries are offset-based; concurrent writes during a multi-page
	// fetch can skip or duplicate rows, which callers accept.
	FindRange(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Vocabulary, error)
	FindRandom(ctx context.Context, db *gorm.DB, limit int) ([]*model.Vocabulary, error)
	Update(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID) error
	CheckWordExists(ctx context.Context, db *gorm.DB, koreanWord string, excludeID *uuid.UUID) (bool, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vocab)
	if result.Error != nil {
		logger.Error("Error creating vocabulary entry in DB",
			"error", result.Error,
			"korean_word", vocab.KoreanWord,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocab model.Vocabulary
	result := db.WithContext(ctx).Where("vocab_id = ?", vocabID).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary entry by ID in DB",
			"error", result.Error,
			"vocab_id", vocabID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &vocab, nil
}

func (r *gormVocabularyRepository) FindRange(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.Vocabulary
	result := db.WithContext(ctx).
		Order("created_at ASC, vocab_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error range-querying vocabulary in DB",
			"error", result.Error,
			"offset", offset,
			"limit", limit,
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindRange: %w", result.Error)
	}
	return entries, nil
}

func (r *gormVocabularyRepository) FindRandom(ctx context.Context, db *gorm.DB, limit int) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.Vocabulary
	result := db.WithContext(ctx).Order("RANDOM()").Limit(limit).Find(&entries)
	if result.Error != nil {
		logger.Error("Error sampling vocabulary in DB", "error", result.Error, "limit", limit)
		return nil, fmt.Errorf("gormVocabularyRepository.FindRandom: %w", result.Error)
	}
	return entries, nil
}

func (r *gormVocabularyRepository) Update(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).Where("vocab_id = ?", vocabID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating vocabulary entry in DB",
			"error", result.Error,
			"vocab_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Delete(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("vocab_id = ?", vocabID).Delete(&model.Vocabulary{})
	if result.Error != nil {
		logger.Error("Error deleting vocabulary entry in DB",
			"error", result.Error,
			"vocab_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) CheckWordExists(ctx context.Context, db *gorm.DB, koreanWord string, excludeID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Vocabulary{}).Where("korean_word = ?", koreanWord)
	if excludeID != nil {
		query = query.Where("vocab_id != ?", *excludeID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking korean_word existence in DB",
			"error", result.Error,
			"korean_word", koreanWord,
		)
		return false, fmt.Errorf("gormVocabularyRepository.CheckWordExists: %w", result.Error)
	}
	return count > 0, nil
}
