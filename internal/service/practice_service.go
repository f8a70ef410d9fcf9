package service

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
)

// PracticeService serves bounded random study batches for the practice
// screen.
type PracticeService interface {
	GetPracticeBatch(ctx context.Context, limit int) ([]*model.Vocabulary, error)
}

type practiceService struct {
	db           *gorm.DB
	vocabRepo    repository.VocabularyRepository
	defaultLimit int
	logger       *slog.Logger
}

func NewPracticeService(db *gorm.DB, vocabRepo repository.VocabularyRepository, defaultLimit int, logger *slog.Logger) PracticeService {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &practiceService{db: db, vocabRepo: vocabRepo, defaultLimit: defaultLimit, logger: logger}
}

func (s *practiceService) GetPracticeBatch(ctx context.Context, limit int) ([]*model.Vocabulary, error) {
	if limit <= 0 || limit > s.defaultLimit {
		limit = s.defaultLimit
	}
	entries, err := s.vocabRepo.FindRandom(ctx, s.db, limit)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return entries, nil
}
