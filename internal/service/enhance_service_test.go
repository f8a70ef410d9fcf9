package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository/mocks"
)

// stubEnricher lets tests script the provider's behavior per record.
type stubEnricher struct {
	name    string
	delay   time.Duration
	calls   int
	enhance func(v *model.Vocabulary, fields []model.FieldName) (map[string]interface{}, error)
}

func (s *stubEnricher) Name() string         { return s.name }
func (s *stubEnricher) Delay() time.Duration { return s.delay }

func (s *stubEnricher) Enhance(_ context.Context, v *model.Vocabulary, fields []model.FieldName) (map[string]interface{}, error) {
	s.calls++
	return s.enhance(v, fields)
}

func TestEnhanceService_EnhanceBatch_PartialFailure(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	failing := ids[1]

	provider := &stubEnricher{
		name:  "openai",
		delay: 500 * time.Millisecond,
		enhance: func(v *model.Vocabulary, _ []model.FieldName) (map[string]interface{}, error) {
			if v.VocabID == failing {
				return nil, errors.New("rate limited")
			}
			return map[string]interface{}{"romanization": "gada"}, nil
		},
	}

	for _, id := range ids {
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), id).
			Return(&model.Vocabulary{VocabID: id, KoreanWord: "가다", BanglaMeaning: "যাওয়া"}, nil).Once()
	}
	// Only the two successful records are persisted.
	mockRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), ids[0], mock.Anything).Return(nil).Once()
	mockRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), ids[2], mock.Anything).Return(nil).Once()

	svc := NewEnhanceService(db, mockRepo, provider, cache, newTestLogger()).(*enhanceService)
	var sleeps []time.Duration
	svc.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	cache.Set(makeEntries(3))

	summary, err := svc.EnhanceBatch(ctx, &model.EnhanceBatchRequest{
		IDs:    ids,
		Fields: []string{"romanization"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	// Results stay in input order with terminal statuses.
	require.Len(t, summary.Results, 3)
	assert.Equal(t, ids[0], summary.Results[0].VocabID)
	assert.Equal(t, model.EnhanceSuccess, summary.Results[0].Status)
	assert.Equal(t, ids[1], summary.Results[1].VocabID)
	assert.Equal(t, model.EnhanceError, summary.Results[1].Status)
	assert.Contains(t, summary.Results[1].Error, "rate limited")
	assert.Equal(t, model.EnhanceSuccess, summary.Results[2].Status)

	// Throttle between records, never after the last one.
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, sleeps)

	// Cache dropped once at batch end.
	_, ok := cache.Get()
	assert.False(t, ok)

	mockRepo.AssertExpectations(t)
}

func TestEnhanceService_EnhanceBatch_AllFieldsResolvedPerRecord(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()

	full := completeEntry()
	full.VocabID = uuid.New()
	bare := &model.Vocabulary{VocabID: uuid.New(), KoreanWord: "사과", BanglaMeaning: "আপেল"}

	var requestedFields []model.FieldName
	provider := &stubEnricher{
		name:  "gemini",
		delay: time.Second,
		enhance: func(v *model.Vocabulary, fields []model.FieldName) (map[string]interface{}, error) {
			requestedFields = fields
			return map[string]interface{}{"romanization": "sagwa"}, nil
		},
	}

	mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), full.VocabID).Return(full, nil).Once()
	mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), bare.VocabID).Return(bare, nil).Once()
	mockRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), bare.VocabID, mock.Anything).Return(nil).Once()

	svc := NewEnhanceService(db, mockRepo, provider, cache, newTestLogger()).(*enhanceService)
	svc.sleep = func(time.Duration) {}

	summary, err := svc.EnhanceBatch(ctx, &model.EnhanceBatchRequest{
		IDs:    []uuid.UUID{full.VocabID, bare.VocabID},
		Fields: []string{"all"},
	})
	require.NoError(t, err)

	// The complete record succeeds without a provider call; the bare one
	// gets its per-record missing-field list.
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, MissingFields(bare), requestedFields)

	mockRepo.AssertExpectations(t)
}

func TestEnhanceService_EnhanceBatch_RejectsUnknownField(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnhanceService(db, new(mocks.VocabularyRepository), &stubEnricher{}, NewListCache[*model.Vocabulary](), newTestLogger())

	_, err := svc.EnhanceBatch(context.Background(), &model.EnhanceBatchRequest{
		IDs:    []uuid.UUID{uuid.New()},
		Fields: []string{"korean_word"},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestEnhanceService_Preview_DoesNotPersist(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)

	id := uuid.New()
	proposal := map[string]interface{}{"explanation": "a much longer explanation of the usage of this word"}
	provider := &stubEnricher{
		name: "openai",
		enhance: func(*model.Vocabulary, []model.FieldName) (map[string]interface{}, error) {
			return proposal, nil
		},
	}

	mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), id).
		Return(&model.Vocabulary{VocabID: id, KoreanWord: "가다", BanglaMeaning: "যাওয়া"}, nil).Once()

	svc := NewEnhanceService(db, mockRepo, provider, NewListCache[*model.Vocabulary](), newTestLogger())

	got, err := svc.Preview(ctx, &model.PreviewRequest{ID: id, Fields: []string{"explanation"}})
	require.NoError(t, err)
	assert.Equal(t, proposal, got)

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestEnhanceService_Apply_PersistsVerbatimAndInvalidates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()
	cache.Set(makeEntries(1))

	id := uuid.New()
	updated := &model.Vocabulary{VocabID: id, KoreanWord: "가다", BanglaMeaning: "যাওয়া", Romanization: "gada"}

	mockRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), id, mock.Anything).
		Run(func(args mock.Arguments) {
			updates := args.Get(3).(map[string]interface{})
			assert.Equal(t, "gada", updates["romanization"])
			// Structured fields arrive typed, ready for the JSON serializer.
			assert.IsType(t, []model.Example{}, updates["examples"])
		}).Return(nil).Once()
	mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), id).Return(updated, nil).Once()

	svc := NewEnhanceService(db, mockRepo, &stubEnricher{}, cache, newTestLogger())

	got, err := svc.Apply(ctx, &model.ApplyRequest{
		ID: id,
		Data: map[string]interface{}{
			"romanization": "gada",
			"examples": []interface{}{
				map[string]interface{}{"korean": "학교에 가요.", "bangla": "আমি স্কুলে যাই।"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, ok := cache.Get()
	assert.False(t, ok)
	mockRepo.AssertExpectations(t)
}

func TestUpdatesFromProposal_RejectsMalformedValues(t *testing.T) {
	_, err := updatesFromProposal(map[string]interface{}{"examples": "not a list"})
	assert.ErrorIs(t, err, model.ErrBadAIResponse)

	_, err = updatesFromProposal(map[string]interface{}{"explanation": 42})
	assert.ErrorIs(t, err, model.ErrBadAIResponse)

	_, err = updatesFromProposal(map[string]interface{}{"chapters": []interface{}{"one"}})
	assert.ErrorIs(t, err, model.ErrBadAIResponse)
}
