package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
)

type AuthService interface {
	// Login verifies the credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	// EnsureUser creates the admin account when it does not exist yet.
	// Used by the seed command.
	EnsureUser(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
	logger   *slog.Logger
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{db: db, userRepo: userRepo, cfg: cfg, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Same answer as a wrong password so the endpoint does not leak
			// which accounts exist.
			return nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrForbidden)
		}
		return nil, model.ErrInternalServer
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrForbidden)
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour)
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    config.AppName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		s.logger.Error("Error signing session token", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return &model.LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *authService) EnsureUser(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	user := &model.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return user, nil
}
