package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/allisson/identity/internal/auth/service"
)

func newGuardedRouter(tokenService authService.TokenService) (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)

	var seenAccountID uuid.UUID
	router := gin.New()
	router.GET("/protected",
		AuthenticationMiddleware(tokenService, discardLogger()),
		func(c *gin.Context) {
			accountID, ok := GetAccountID(c.Request.Context())
			if !ok {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "no account in context"})
				return
			}
			seenAccountID = accountID
			c.JSON(http.StatusOK, gin.H{"account_id": accountID.String()})
		},
	)
	return router, &seenAccountID
}

func TestAuthenticationMiddleware(t *testing.T) {
	tokenService := authService.NewTokenService(
		"access-secret-for-tests",
		"refresh-secret-for-tests",
		15*time.Minute,
		7*24*time.Hour,
	)
	accountID := uuid.Must(uuid.NewV7())

	t.Run("Success_ValidToken", func(t *testing.T) {
		router, seenAccountID := newGuardedRouter(tokenService)

		token, _, err := tokenService.SignAccessToken(accountID, time.Now())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, accountID, *seenAccountID)
	})

	t.Run("Success_CaseInsensitiveBearerPrefix", func(t *testing.T) {
		router, _ := newGuardedRouter(tokenService)

		token, _, err := tokenService.SignAccessToken(accountID, time.Now())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		router, _ := newGuardedRouter(tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_MalformedHeader", func(t *testing.T) {
		router, _ := newGuardedRouter(tokenService)

		for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "header: %q", header)
		}
	})

	t.Run("Error_ForgedToken", func(t *testing.T) {
		router, _ := newGuardedRouter(tokenService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-real-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		router, _ := newGuardedRouter(tokenService)

		token, _, err := tokenService.SignAccessToken(accountID, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	// A refresh token must not pass the access guard.
	t.Run("Error_RefreshTokenRejected", func(t *testing.T) {
		router, _ := newGuardedRouter(tokenService)

		token, _, err := tokenService.SignRefreshToken(accountID, time.Now())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAccountIDContext(t *testing.T) {
	t.Run("Success_RoundTrip", func(t *testing.T) {
		accountID := uuid.Must(uuid.NewV7())
		ctx := WithAccountID(context.Background(), accountID)

		got, ok := GetAccountID(ctx)
		assert.True(t, ok)
		assert.Equal(t, accountID, got)
	})

	t.Run("Error_EmptyContext", func(t *testing.T) {
		got, ok := GetAccountID(context.Background())
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, got)
	})
}
