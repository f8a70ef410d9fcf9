package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository/mocks"
)

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLHours = 24
	return cfg
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cfg := newAuthTestConfig()

	password := "correct-horse-battery"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		UserID:       uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}

	t.Run("valid credentials issue a parseable token", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), user.Email).Return(user, nil).Once()
		svc := NewAuthService(db, mockRepo, cfg, newTestLogger())

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: password})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)

		parsed, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
			return []byte(cfg.Auth.JWTSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(*jwt.RegisteredClaims)
		assert.Equal(t, user.UserID.String(), claims.Subject)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), user.Email).Return(user, nil).Once()
		svc := NewAuthService(db, mockRepo, cfg, newTestLogger())

		_, err := svc.Login(ctx, &model.LoginRequest{Email: user.Email, Password: "wrong"})
		assert.ErrorIs(t, err, model.ErrForbidden)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown email gets the same answer as a wrong password", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "nobody@example.com").
			Return(nil, model.ErrNotFound).Once()
		svc := NewAuthService(db, mockRepo, cfg, newTestLogger())

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: password})
		assert.ErrorIs(t, err, model.ErrForbidden)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Detail.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthService_EnsureUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cfg := newAuthTestConfig()

	t.Run("existing account is returned unchanged", func(t *testing.T) {
		existing := &model.User{UserID: uuid.New(), Email: "admin@example.com"}
		mockRepo := new(mocks.UserRepository)
		mockRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), existing.Email).Return(existing, nil).Once()
		svc := NewAuthService(db, mockRepo, cfg, newTestLogger())

		got, err := svc.EnsureUser(ctx, existing.Email, "irrelevant")
		require.NoError(t, err)
		assert.Equal(t, existing, got)

		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing account is created with a hashed password", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "new@example.com").
			Return(nil, model.ErrNotFound).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(2).(*model.User)
				assert.NotEqual(t, uuid.Nil, u.UserID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
			}).Return(nil).Once()
		svc := NewAuthService(db, mockRepo, cfg, newTestLogger())

		got, err := svc.EnsureUser(ctx, "new@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", got.Email)
		mockRepo.AssertExpectations(t)
	})
}
