// Package http provides HTTP handlers for account operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/account/http/dto"
	"github.com/allisson/identity/internal/account/usecase"
	"github.com/allisson/identity/internal/httputil"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	accountUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler with required dependencies.
func NewAccountHandler(accountUseCase usecase.UseCase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// ListHandler returns a paginated list of accounts.
// GET /v1/accounts?offset=0&limit=50 - Requires a valid access token.
func (h *AccountHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	accounts, err := h.accountUseCase.ListAccounts(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountsToListResponse(accounts, offset, limit))
}
