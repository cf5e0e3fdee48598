package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	"github.com/allisson/identity/internal/auth/http/dto"
	authUseCase "github.com/allisson/identity/internal/auth/usecase"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// refreshCookieName is the cookie carrying the refresh token between the
// browser and the refresh endpoint.
const refreshCookieName = "refresh_token"

// refreshTokenHeader is the header fallback for non-browser clients.
const refreshTokenHeader = "X-Refresh-Token"

// AuthHandler handles HTTP requests for the credential lifecycle:
// registration, password login and refresh exchange.
type AuthHandler struct {
	authUseCase     authUseCase.AuthUseCase
	refreshTokenTTL time.Duration
	cookieSecure    bool
	logger          *slog.Logger
}

// NewAuthHandler creates a new credential handler with required dependencies.
func NewAuthHandler(
	useCase authUseCase.AuthUseCase,
	refreshTokenTTL time.Duration,
	cookieSecure bool,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:     useCase,
		refreshTokenTTL: refreshTokenTTL,
		cookieSecure:    cookieSecure,
		logger:          logger,
	}
}

// SignUpHandler registers a new account and issues its first token pair.
// POST /v1/signup
// Returns 201 Created with the access token; the refresh token is set as an
// HTTP-only cookie and never appears in the body.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var req dto.SignUpRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := authDomain.SignUpInput(req)

	pair, err := h.authUseCase.SignUp(c.Request.Context(), &input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusCreated, dto.MapTokenPairToResponse(pair))
}

// LoginHandler authenticates an email/password pair and issues a fresh token pair.
// POST /v1/login
// Returns 200 OK with the same body and cookie contract as signup.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := authDomain.LoginInput(req)

	pair, err := h.authUseCase.Login(c.Request.Context(), &input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.MapTokenPairToResponse(pair))
}

// RefreshHandler exchanges a refresh token for a new access token.
// POST /v1/refresh
// The refresh token is read from the cookie, then the X-Refresh-Token header,
// then the JSON body. The presented token stays usable afterwards.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	output, err := h.authUseCase.Refresh(c.Request.Context(), h.extractRefreshToken(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccessTokenToResponse(output))
}

// extractRefreshToken locates the refresh token: cookie, header, body, in
// that order. Returns the empty string when none is present.
func (h *AuthHandler) extractRefreshToken(c *gin.Context) string {
	if token, err := c.Cookie(refreshCookieName); err == nil && token != "" {
		return token
	}

	if token := c.GetHeader(refreshTokenHeader); token != "" {
		return token
	}

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}

	return ""
}

// setRefreshCookie attaches the refresh token as an HTTP-only cookie scoped
// to the whole site, expiring together with the token.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		refreshCookieName,
		refreshToken,
		int(h.refreshTokenTTL.Seconds()),
		"/",
		"",
		h.cookieSecure,
		true,
	)
}
