package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/handlers"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service/mocks"
)

func newAuthRouter(svc *mocks.MockAuthService) chi.Router {
	h := handlers.NewAuthHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Post("/auth/login", h.PostLogin)
	return r
}

func TestAuthHandler_PostLogin(t *testing.T) {
	validReq := model.LoginRequest{Email: "admin@example.com", Password: "s3cret-pass"}

	t.Run("valid credentials return a token", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Login", mock.Anything, &validReq).
			Return(&model.LoginResponse{Token: "jwt-token", ExpiresAt: time.Now().Add(24 * time.Hour)}, nil).Once()

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/login", validReq)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "jwt-token", got.Token)
	})

	t.Run("wrong credentials are a 403", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Login", mock.Anything, &validReq).
			Return(nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrForbidden)).Once()

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/login", validReq)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeErrorResponse(t, rec).Error.Code)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/login",
			model.LoginRequest{Email: "not-an-email", Password: "s3cret-pass"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/login",
			model.LoginRequest{Email: "admin@example.com", Password: "short"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
