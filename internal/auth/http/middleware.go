package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/identity/internal/auth/service"
	apperrors "github.com/allisson/identity/internal/errors"
	"github.com/allisson/identity/internal/httputil"
)

// AuthenticationMiddleware gates protected routes on access-token verification.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies it under the access token class
// 3. Stores the account ID in the request context for downstream handlers
//
// Error handling:
//   - Missing/malformed Authorization header → 401 Unauthorized
//   - Token present but invalid/expired/forged → 403 Forbidden
//
// No store lookup happens here: access tokens are self-contained and their
// short TTL bounds the revocation lag.
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		accountID, err := tokenService.VerifyToken(token, authService.AccessTokenClass, time.Now().UTC())
		if err != nil {
			logger.Debug("authentication failed: token verification")
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated account in context
		ctx := WithAccountID(c.Request.Context(), accountID)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("account_id", accountID.String()))

		c.Next()
	}
}
