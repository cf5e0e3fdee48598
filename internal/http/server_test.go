package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/allisson/identity/internal/account/domain"
	accountHTTP "github.com/allisson/identity/internal/account/http"
	authDomain "github.com/allisson/identity/internal/auth/domain"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	authMocks "github.com/allisson/identity/internal/auth/http/mocks"
	authService "github.com/allisson/identity/internal/auth/service"
	"github.com/allisson/identity/internal/config"
	"github.com/allisson/identity/internal/metrics"
)

type mockAccountUseCase struct {
	mock.Mock
}

func (m *mockAccountUseCase) GetAccountByID(
	ctx context.Context,
	id uuid.UUID,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

func (m *mockAccountUseCase) ListAccounts(
	ctx context.Context,
	offset, limit int,
) ([]*accountDomain.Account, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accountDomain.Account), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:               "error",
		AccessTokenSecret:      "access-secret",
		RefreshTokenSecret:     "refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		RateLimitEnabled:       false,
		CORSEnabled:            false,
		MetricsEnabled:         false,
		MetricsNamespace:       "identity",
	}
}

func testRouter(
	t *testing.T,
	cfg *config.Config,
	authUC *authMocks.AuthUseCase,
	accountUC *mockAccountUseCase,
) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger()
	tokenService := authService.NewTokenService(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		cfg.AccessTokenExpiration,
		cfg.RefreshTokenExpiration,
	)

	return SetupRouter(context.Background(), RouterDeps{
		Config:         cfg,
		Logger:         logger,
		AuthHandler:    authHTTP.NewAuthHandler(authUC, cfg.RefreshTokenExpiration, false, logger),
		AccountHandler: accountHTTP.NewAccountHandler(accountUC, logger),
		TokenService:   tokenService,
	})
}

func TestSetupRouter(t *testing.T) {
	t.Run("Success_HealthEndpoints", func(t *testing.T) {
		router := testRouter(t, testConfig(), &authMocks.AuthUseCase{}, &mockAccountUseCase{})

		for _, path := range []string{"/health", "/ready"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("Success_SignUpRoute", func(t *testing.T) {
		authUC := &authMocks.AuthUseCase{}
		pair := &authDomain.TokenPair{
			AccessToken:      "access-token",
			AccessExpiresAt:  time.Now().UTC().Add(15 * time.Minute),
			RefreshToken:     "refresh-token",
			RefreshExpiresAt: time.Now().UTC().Add(7 * 24 * time.Hour),
		}
		authUC.On("SignUp", mock.Anything, mock.Anything).Return(pair, nil)

		router := testRouter(t, testConfig(), authUC, &mockAccountUseCase{})

		payload := map[string]string{
			"name":     "Test User",
			"email":    "test@example.com",
			"password": "correct horse battery staple",
		}
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		authUC.AssertExpectations(t)
	})

	t.Run("Error_AccountsRequiresAccessToken", func(t *testing.T) {
		router := testRouter(t, testConfig(), &authMocks.AuthUseCase{}, &mockAccountUseCase{})

		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success_AccountsWithAccessToken", func(t *testing.T) {
		cfg := testConfig()
		accountUC := &mockAccountUseCase{}
		accountUC.On("ListAccounts", mock.Anything, 0, 50).
			Return([]*accountDomain.Account{}, nil)

		router := testRouter(t, cfg, &authMocks.AuthUseCase{}, accountUC)

		tokenService := authService.NewTokenService(
			cfg.AccessTokenSecret,
			cfg.RefreshTokenSecret,
			cfg.AccessTokenExpiration,
			cfg.RefreshTokenExpiration,
		)
		token, _, err := tokenService.SignAccessToken(uuid.Must(uuid.NewV7()), time.Now().UTC())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		accountUC.AssertExpectations(t)
	})

	t.Run("Success_RateLimitedCredentialEndpoints", func(t *testing.T) {
		cfg := testConfig()
		cfg.RateLimitEnabled = true
		cfg.RateLimitRequestsPerSec = 0.1
		cfg.RateLimitBurst = 1

		authUC := &authMocks.AuthUseCase{}
		authUC.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials)

		router := testRouter(t, cfg, authUC, &mockAccountUseCase{})

		payload := map[string]string{"email": "test@example.com", "password": "whatever1"}
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		first := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewReader(body))
		first.Header.Set("Content-Type", "application/json")
		w1 := httptest.NewRecorder()
		router.ServeHTTP(w1, first)
		assert.Equal(t, http.StatusUnauthorized, w1.Code)

		second := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewReader(body))
		second.Header.Set("Content-Type", "application/json")
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, second)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	})
}

func TestMetricsServer(t *testing.T) {
	provider, err := metrics.NewProvider("identity")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	server := NewMetricsServer("127.0.0.1", 0, testLogger(), provider)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
