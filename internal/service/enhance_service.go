package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/enrich"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
)

// EnhanceService drives AI enrichment: the sequential bulk loop plus the
// single-record preview/apply flow.
type EnhanceService interface {
	// EnhanceBatch processes the records strictly in input order. A failed
	// record is reported and skipped, never aborting the batch. Successful
	// results are persisted individually and immediately; the list cache is
	// invalidated once at the end of the whole batch.
	EnhanceBatch(ctx context.Context, req *model.EnhanceBatchRequest) (*model.EnhanceSummary, error)
	// Preview calls the provider and returns the proposed partial record
	// without persisting anything.
	Preview(ctx context.Context, req *model.PreviewRequest) (map[string]interface{}, error)
	// Apply persists previewed (possibly user-edited) data verbatim by
	// primary-key update, then invalidates the cache. The data is not
	// re-validated against the schema; the store's rejection is the only
	// gate.
	Apply(ctx context.Context, req *model.ApplyRequest) (*model.Vocabulary, error)
}

type enhanceService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	provider  enrich.Enricher
	cache     *ListCache[*model.Vocabulary]
	logger    *slog.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func NewEnhanceService(db *gorm.DB, vocabRepo repository.VocabularyRepository, provider enrich.Enricher, cache *ListCache[*model.Vocabulary], logger *slog.Logger) EnhanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &enhanceService{
		db:        db,
		vocabRepo: vocabRepo,
		provider:  provider,
		cache:     cache,
		logger:    logger,
		sleep:     time.Sleep,
	}
}

func (s *enhanceService) EnhanceBatch(ctx context.Context, req *model.EnhanceBatchRequest) (*model.EnhanceSummary, error) {
	fields, err := resolveFieldSelection(req.Fields)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With(slog.String("provider", s.provider.Name()), slog.Int("total", len(req.IDs)))
	logger.Info("Enhancement batch started")

	summary := &model.EnhanceSummary{
		Total:   len(req.IDs),
		Results: make([]model.EnhanceRecordResult, len(req.IDs)),
	}
	for i, id := range req.IDs {
		summary.Results[i] = model.EnhanceRecordResult{VocabID: id, Status: model.EnhancePending}
	}

	for i, id := range req.IDs {
		summary.Results[i].Status = model.EnhanceProcessing

		if err := s.enhanceOne(ctx, id, fields); err != nil {
			summary.Results[i].Status = model.EnhanceError
			summary.Results[i].Error = err.Error()
			summary.Failed++
			logger.Warn("Record enhancement failed",
				slog.String("vocab_id", id.String()),
				slog.String("error", err.Error()),
			)
		} else {
			summary.Results[i].Status = model.EnhanceSuccess
			summary.Succeeded++
		}

		logger.Info("Enhancement progress", slog.Int("completed", i+1))

		// Fixed-rate throttle between records, skipped after the last.
		if i < len(req.IDs)-1 {
			s.sleep(s.provider.Delay())
		}
	}

	// One invalidation for the whole batch, not per record.
	s.cache.Invalidate()

	logger.Info("Enhancement batch finished",
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("failed", summary.Failed),
	)
	return summary, nil
}

// enhanceOne runs the full per-record flow: load, enrich, persist. Provider
// errors and store errors surface identically to the caller.
func (s *enhanceService) enhanceOne(ctx context.Context, id uuid.UUID, fields []model.FieldName) error {
	vocab, err := s.vocabRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}

	requested := fields
	if len(requested) == 0 {
		requested = MissingFields(vocab)
		if len(requested) == 0 {
			// Nothing missing; succeed without a provider call.
			return nil
		}
	}

	proposal, err := s.provider.Enhance(ctx, vocab, requested)
	if err != nil {
		return err
	}
	if len(proposal) == 0 {
		return nil
	}

	updates, err := updatesFromProposal(proposal)
	if err != nil {
		return err
	}
	return s.vocabRepo.Update(ctx, s.db, id, updates)
}

func (s *enhanceService) Preview(ctx context.Context, req *model.PreviewRequest) (map[string]interface{}, error) {
	fields, err := resolveFieldSelection(req.Fields)
	if err != nil {
		return nil, err
	}

	vocab, err := s.vocabRepo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return nil, err
	}

	requested := fields
	if len(requested) == 0 {
		requested = MissingFields(vocab)
		if len(requested) == 0 {
			return map[string]interface{}{}, nil
		}
	}

	return s.provider.Enhance(ctx, vocab, requested)
}

func (s *enhanceService) Apply(ctx context.Context, req *model.ApplyRequest) (*model.Vocabulary, error) {
	updates, err := updatesFromProposal(req.Data)
	if err != nil {
		return nil, err
	}

	if err := s.vocabRepo.Update(ctx, s.db, req.ID, updates); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	return s.vocabRepo.FindByID(ctx, s.db, req.ID)
}

// resolveFieldSelection translates the request's field list: ["all"] selects
// every missing field (resolved per record), anything else must be known
// enhanceable field names.
func resolveFieldSelection(raw []string) ([]model.FieldName, error) {
	if len(raw) == 1 && raw[0] == model.FieldsAll {
		return nil, nil
	}
	fields := make([]model.FieldName, 0, len(raw))
	for _, name := range raw {
		field := model.FieldName(name)
		known := false
		for _, f := range model.EnhanceableFields {
			if f == field {
				known = true
				break
			}
		}
		if !known {
			return nil, model.NewAppError("INVALID_FIELD", "unknown enhanceable field: "+name, "fields", model.ErrInvalidInput)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// updatesFromProposal converts a provider/user proposal into typed column
// updates. Known structured fields are re-marshaled into their Go types so
// the JSON serializer stores them correctly; unknown keys pass through
// untouched and the store's rejection surfaces as the record's error.
func updatesFromProposal(proposal map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(proposal))
	for key, value := range proposal {
		switch key {
		case string(model.FieldExamples):
			var examples []model.Example
			if err := remarshal(value, &examples); err != nil {
				return nil, fmt.Errorf("%w: examples: %v", model.ErrBadAIResponse, err)
			}
			updates[key] = examples
		case string(model.FieldVerbForms):
			var forms model.VerbForms
			if err := remarshal(value, &forms); err != nil {
				return nil, fmt.Errorf("%w: verb_forms: %v", model.ErrBadAIResponse, err)
			}
			updates[key] = &forms
		case string(model.FieldThemes):
			var themes []string
			if err := remarshal(value, &themes); err != nil {
				return nil, fmt.Errorf("%w: themes: %v", model.ErrBadAIResponse, err)
			}
			updates[key] = themes
		case string(model.FieldChapters):
			var chapters []int
			if err := remarshal(value, &chapters); err != nil {
				return nil, fmt.Errorf("%w: chapters: %v", model.ErrBadAIResponse, err)
			}
			updates[key] = chapters
		case string(model.FieldExplanation), string(model.FieldRomanization), string(model.FieldPartOfSpeech):
			str, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a string", model.ErrBadAIResponse, key)
			}
			updates[key] = str
		default:
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return nil, errors.New("empty proposal")
	}
	return updates, nil
}

func remarshal(from interface{}, to interface{}) error {
	raw, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, to)
}
