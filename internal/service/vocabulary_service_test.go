package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository/mocks"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeEntries(n int) []*model.Vocabulary {
	entries := make([]*model.Vocabulary, n)
	for i := range entries {
		entries[i] = &model.Vocabulary{VocabID: uuid.New(), KoreanWord: "단어", BanglaMeaning: "শব্দ"}
	}
	return entries
}

func TestVocabularyService_FetchAll_Pagination(t *testing.T) {
	const pageSize = 1000

	tests := []struct {
		name  string
		total int
	}{
		{"empty table", 0},
		{"one short page", 999},
		{"exactly one page", 1000},
		{"one full page plus one", 1001},
		{"two full pages plus a short one", 2500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			db := newTestDB(t)
			mockRepo := new(mocks.VocabularyRepository)
			svc := NewVocabularyService(db, mockRepo, NewListCache[*model.Vocabulary](), pageSize, newTestLogger())

			entries := makeEntries(tt.total)
			for offset := 0; ; offset += pageSize {
				high := offset + pageSize
				if high > tt.total {
					high = tt.total
				}
				page := entries[offset:high]
				mockRepo.On("FindRange", ctx, mock.AnythingOfType("*gorm.DB"), offset, pageSize).
					Return(page, nil).Once()
				if len(page) < pageSize {
					break
				}
			}

			got, err := svc.FetchAll(ctx)
			require.NoError(t, err)
			assert.Len(t, got, tt.total)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVocabularyService_FetchAll_CachesSnapshot(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()
	svc := NewVocabularyService(db, mockRepo, cache, 1000, newTestLogger())

	entries := makeEntries(5)
	// Only one round of range queries: the second FetchAll must hit the cache.
	mockRepo.On("FindRange", ctx, mock.AnythingOfType("*gorm.DB"), 0, 1000).
		Return(entries, nil).Once()

	first, err := svc.FetchAll(ctx)
	require.NoError(t, err)
	second, err := svc.FetchAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertExpectations(t)
}

func TestVocabularyService_ListVocabulary_Filters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()
	svc := NewVocabularyService(db, mockRepo, cache, 1000, newTestLogger())

	complete := completeEntry()
	complete.VocabID = uuid.New()

	bare := &model.Vocabulary{VocabID: uuid.New(), KoreanWord: "사과", BanglaMeaning: "আপেল"}

	themed := &model.Vocabulary{
		VocabID:       uuid.New(),
		KoreanWord:    "김치",
		BanglaMeaning: "কিমচি",
		Romanization:  "kimchi",
		Themes:        []string{"Food"},
	}

	// Pre-populate the cache so no repository call happens.
	cache.Set([]*model.Vocabulary{complete, bare, themed})

	t.Run("no filters returns everything", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 3, resp.Filtered)
		assert.Len(t, resp.Items, 3)
	})

	t.Run("search matches korean word", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{Search: "사과"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Filtered)
		assert.Equal(t, bare.VocabID, resp.Items[0].VocabID)
	})

	t.Run("search matches romanization case-insensitively", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{Search: "KIMCHI"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Filtered)
		assert.Equal(t, themed.VocabID, resp.Items[0].VocabID)
	})

	t.Run("theme filter is case-insensitive", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{Theme: "food"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Filtered)
		assert.Equal(t, themed.VocabID, resp.Items[0].VocabID)
	})

	t.Run("missing=all keeps only incomplete entries", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{MissingFilter: "all"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Filtered)
	})

	t.Run("missing=missing-all keeps only all-missing entries", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{MissingFilter: "missing-all"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Filtered)
		assert.Equal(t, bare.VocabID, resp.Items[0].VocabID)
	})

	t.Run("missing=romanization selects single-field mode", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{MissingFilter: "romanization"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Filtered)
		assert.Equal(t, bare.VocabID, resp.Items[0].VocabID)
	})

	t.Run("unknown missing mode is rejected", func(t *testing.T) {
		_, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{MissingFilter: "bogus"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("badges only for items with missing fields", func(t *testing.T) {
		resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{})
		require.NoError(t, err)
		assert.NotContains(t, resp.MissingFields, complete.VocabID.String())
		assert.Contains(t, resp.MissingFields, bare.VocabID.String())
	})
}

func TestVocabularyService_ListVocabulary_Window(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()
	svc := NewVocabularyService(db, mockRepo, cache, 1000, newTestLogger())

	cache.Set(makeEntries(100))

	// 1024px gives 3 columns; a 660px viewport at the top covers rows 0-3
	// plus 3 overscan rows, so items [0, 21).
	resp, err := svc.ListVocabulary(ctx, &model.VocabularyListQuery{
		Width:          1024,
		ScrollTop:      0,
		ViewportHeight: 660,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Columns)
	assert.Equal(t, 0, resp.Start)
	assert.Equal(t, 21, resp.End)
	assert.Len(t, resp.Items, 21)
	assert.Equal(t, 100, resp.Filtered)
}

func TestVocabularyService_PostVocabulary_Conflict(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()
	svc := NewVocabularyService(db, mockRepo, cache, 1000, newTestLogger())

	cache.Set(makeEntries(1))

	mockRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), "가다", (*uuid.UUID)(nil)).
		Return(true, nil).Once()

	_, err := svc.PostVocabulary(ctx, &model.PostVocabularyRequest{KoreanWord: "가다", BanglaMeaning: "যাওয়া"})
	assert.ErrorIs(t, err, model.ErrConflict)

	// Failed creates must not drop the snapshot.
	_, ok := cache.Get()
	assert.True(t, ok)
	mockRepo.AssertExpectations(t)
}

func TestVocabularyService_PostVocabulary_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()
	svc := NewVocabularyService(db, mockRepo, cache, 1000, newTestLogger())

	cache.Set(makeEntries(1))

	mockRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), "가다", (*uuid.UUID)(nil)).
		Return(false, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocabulary")).
		Run(func(args mock.Arguments) {
			vocab := args.Get(2).(*model.Vocabulary)
			assert.NotEqual(t, uuid.Nil, vocab.VocabID)
			assert.Equal(t, "가다", vocab.KoreanWord)
		}).Return(nil).Once()

	created, err := svc.PostVocabulary(ctx, &model.PostVocabularyRequest{KoreanWord: "가다", BanglaMeaning: "যাওয়া"})
	require.NoError(t, err)
	assert.NotNil(t, created)

	_, ok := cache.Get()
	assert.False(t, ok)
	mockRepo.AssertExpectations(t)
}

func TestVocabularyService_BulkCreate_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mockRepo := new(mocks.VocabularyRepository)
	cache := NewListCache[*model.Vocabulary]()
	svc := NewVocabularyService(db, mockRepo, cache, 1000, newTestLogger())

	// First entry passes, second collides: the whole request fails.
	mockRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), "하나", (*uuid.UUID)(nil)).
		Return(false, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocabulary")).
		Return(nil).Once()
	mockRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), "둘", (*uuid.UUID)(nil)).
		Return(true, nil).Once()

	_, err := svc.BulkCreate(ctx, &model.BulkVocabularyRequest{Entries: []model.PostVocabularyRequest{
		{KoreanWord: "하나", BanglaMeaning: "এক"},
		{KoreanWord: "둘", BanglaMeaning: "দুই"},
	}})
	assert.ErrorIs(t, err, model.ErrConflict)
	mockRepo.AssertExpectations(t)
}
