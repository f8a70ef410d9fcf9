package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository/mocks"
)

func TestPracticeService_GetPracticeBatch_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	tests := []struct {
		name      string
		requested int
		effective int
	}{
		{"zero falls back to the default", 0, 20},
		{"negative falls back to the default", -5, 20},
		{"above the cap is clamped", 100, 20},
		{"within range passes through", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.VocabularyRepository)
			mockRepo.On("FindRandom", ctx, mock.AnythingOfType("*gorm.DB"), tt.effective).
				Return(makeEntries(tt.effective), nil).Once()
			svc := NewPracticeService(db, mockRepo, 20, newTestLogger())

			entries, err := svc.GetPracticeBatch(ctx, tt.requested)
			require.NoError(t, err)
			assert.Len(t, entries, tt.effective)
			mockRepo.AssertExpectations(t)
		})
	}
}
