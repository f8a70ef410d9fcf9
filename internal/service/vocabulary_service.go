package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/window"
)

type VocabularyService interface {
	PostVocabulary(ctx context.Context, req *model.PostVocabularyRequest) (*model.Vocabulary, error)
	GetVocabulary(ctx context.Context, vocabID uuid.UUID) (*model.Vocabulary, error)
	// FetchAll accumulates fixed-size range queries until a short page, then
	// caches the snapshot until the next mutation.
	FetchAll(ctx context.Context) ([]*model.Vocabulary, error)
	ListVocabulary(ctx context.Context, query *model.VocabularyListQuery) (*model.VocabularyListResponse, error)
	PutVocabulary(ctx context.Context, vocabID uuid.UUID, req *model.PutVocabularyRequest) (*model.Vocabulary, error)
	DeleteVocabulary(ctx context.Context, vocabID uuid.UUID) error
	BulkCreate(ctx context.Context, req *model.BulkVocabularyRequest) ([]*model.Vocabulary, error)
}

type vocabularyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	cache     *ListCache[*model.Vocabulary]
	pageSize  int
	logger    *slog.Logger
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository, cache *ListCache[*model.Vocabulary], pageSize int, logger *slog.Logger) VocabularyService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
		cache:     cache,
		pageSize:  pageSize,
		logger:    logger,
	}
}

func (s *vocabularyService) PostVocabulary(ctx context.Context, req *model.PostVocabularyRequest) (*model.Vocabulary, error) {
	if req.KoreanWord == "" || req.BanglaMeaning == "" {
		return nil, model.ErrInvalidInput
	}

	var created *model.Vocabulary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.vocabRepo.CheckWordExists(ctx, tx, req.KoreanWord, nil)
		if err != nil {
			return model.ErrInternalServer
		}
		if exists {
			return model.ErrConflict
		}

		vocab := &model.Vocabulary{
			VocabID:       uuid.New(),
			KoreanWord:    req.KoreanWord,
			BanglaMeaning: req.BanglaMeaning,
			Romanization:  req.Romanization,
			PartOfSpeech:  req.PartOfSpeech,
			Explanation:   req.Explanation,
			Examples:      req.Examples,
			Themes:        req.Themes,
			Chapters:      req.Chapters,
			VerbForms:     req.VerbForms,
		}
		if err := s.vocabRepo.Create(ctx, tx, vocab); err != nil {
			return model.ErrInternalServer
		}
		created = vocab
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PostVocabulary", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.cache.Invalidate()
	return created, nil
}

func (s *vocabularyService) GetVocabulary(ctx context.Context, vocabID uuid.UUID) (*model.Vocabulary, error) {
	return s.vocabRepo.FindByID(ctx, s.db, vocabID)
}

func (s *vocabularyService) FetchAll(ctx context.Context) ([]*model.Vocabulary, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	var all []*model.Vocabulary
	for offset := 0; ; offset += s.pageSize {
		page, err := s.vocabRepo.FindRange(ctx, s.db, offset, s.pageSize)
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

func (s *vocabularyService) ListVocabulary(ctx context.Context, query *model.VocabularyListQuery) (*model.VocabularyListResponse, error) {
	all, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := filterVocabulary(all, query)
	if err != nil {
		return nil, err
	}

	resp := &model.VocabularyListResponse{
		Total:    len(all),
		Filtered: len(filtered),
		Start:    0,
		End:      len(filtered),
		Items:    filtered,
	}

	if query.Width > 0 {
		columns := window.Columns(query.Width)
		rng := window.Visible(len(filtered), columns, window.DefaultRowHeight,
			query.ScrollTop, query.ViewportHeight, window.DefaultOverscan)
		resp.Columns = columns
		resp.Start = rng.Start
		resp.End = rng.End
		resp.Items = filtered[rng.Start:rng.End]
	}

	resp.MissingFields = make(map[string][]model.FieldName, len(resp.Items))
	for _, v := range resp.Items {
		if missing := MissingFields(v); len(missing) > 0 {
			resp.MissingFields[v.VocabID.String()] = missing
		}
	}

	return resp, nil
}

// filterVocabulary applies search, theme and missing-field filters to the
// fetched snapshot, mirroring the dashboard's client-side filtering.
func filterVocabulary(entries []*model.Vocabulary, query *model.VocabularyListQuery) ([]*model.Vocabulary, error) {
	matchMissing, err := missingPredicate(query.MissingFilter)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))

	filtered := make([]*model.Vocabulary, 0, len(entries))
	for _, v := range entries {
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		if query.Theme != "" && !hasTheme(v, query.Theme) {
			continue
		}
		if matchMissing != nil && !matchMissing(v) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered, nil
}

func missingPredicate(mode string) (func(*model.Vocabulary) bool, error) {
	switch mode {
	case "":
		return nil, nil
	case "all":
		return IsIncomplete, nil
	case "missing-all":
		return MissingAllFields, nil
	case string(model.FieldVerbForms), string(model.FieldExamples), string(model.FieldExplanation),
		string(model.FieldRomanization), string(model.FieldPartOfSpeech), string(model.FieldThemes),
		string(model.FieldChapters):
		field := model.FieldName(mode)
		return func(v *model.Vocabulary) bool { return IsFieldMissing(v, field) }, nil
	default:
		return nil, model.NewAppError("INVALID_FILTER", "unknown missing-field filter mode: "+mode, "missing", model.ErrInvalidInput)
	}
}

func matchesSearch(v *model.Vocabulary, search string) bool {
	return strings.Contains(strings.ToLower(v.KoreanWord), search) ||
		strings.Contains(strings.ToLower(v.BanglaMeaning), search) ||
		strings.Contains(strings.ToLower(v.Romanization), search)
}

func hasTheme(v *model.Vocabulary, theme string) bool {
	for _, t := range v.Themes {
		if strings.EqualFold(t, theme) {
			return true
		}
	}
	return false
}

func (s *vocabularyService) PutVocabulary(ctx context.Context, vocabID uuid.UUID, req *model.PutVocabularyRequest) (*model.Vocabulary, error) {
	var updated *model.Vocabulary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.vocabRepo.FindByID(ctx, tx, vocabID)
		if err != nil {
			return err
		}

		if req.KoreanWord != current.KoreanWord {
			exists, err := s.vocabRepo.CheckWordExists(ctx, tx, req.KoreanWord, &vocabID)
			if err != nil {
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
		}

		updates := map[string]interface{}{
			"korean_word":    req.KoreanWord,
			"bangla_meaning": req.BanglaMeaning,
			"romanization":   req.Romanization,
			"part_of_speech": req.PartOfSpeech,
			"explanation":    req.Explanation,
			"examples":       req.Examples,
			"themes":         req.Themes,
			"chapters":       req.Chapters,
			"verb_forms":     req.VerbForms,
		}
		if err := s.vocabRepo.Update(ctx, tx, vocabID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return err
			}
			return model.ErrInternalServer
		}

		updated, err = s.vocabRepo.FindByID(ctx, tx, vocabID)
		if err != nil {
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PutVocabulary", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.cache.Invalidate()
	return updated, nil
}

func (s *vocabularyService) DeleteVocabulary(ctx context.Context, vocabID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vocabRepo.Delete(ctx, tx, vocabID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Transaction failed for DeleteVocabulary", slog.Any("error", err))
		return model.ErrInternalServer
	}

	s.cache.Invalidate()
	return nil
}

func (s *vocabularyService) BulkCreate(ctx context.Context, req *model.BulkVocabularyRequest) ([]*model.Vocabulary, error) {
	created := make([]*model.Vocabulary, 0, len(req.Entries))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range req.Entries {
			entry := &req.Entries[i]
			if entry.KoreanWord == "" || entry.BanglaMeaning == "" {
				return model.ErrInvalidInput
			}
			exists, err := s.vocabRepo.CheckWordExists(ctx, tx, entry.KoreanWord, nil)
			if err != nil {
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
			vocab := &model.Vocabulary{
				VocabID:       uuid.New(),
				KoreanWord:    entry.KoreanWord,
				BanglaMeaning: entry.BanglaMeaning,
				Romanization:  entry.Romanization,
				PartOfSpeech:  entry.PartOfSpeech,
				Explanation:   entry.Explanation,
				Examples:      entry.Examples,
				Themes:        entry.Themes,
				Chapters:      entry.Chapters,
				VerbForms:     entry.VerbForms,
			}
			if err := s.vocabRepo.Create(ctx, tx, vocab); err != nil {
				return model.ErrInternalServer
			}
			created = append(created, vocab)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		s.logger.Error("Transaction failed for BulkCreate", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	s.cache.Invalidate()
	return created, nil
}
