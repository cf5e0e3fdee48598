// Package dto contains data transfer objects for the account HTTP API.
package dto

import (
	"time"

	"github.com/allisson/identity/internal/account/domain"
)

// AccountResponse represents an account in API responses.
// The password hash is intentionally never exposed.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ListAccountsResponse represents a paginated list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}

// MapAccountToResponse converts a domain account to its API representation.
func MapAccountToResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}

// MapAccountsToListResponse converts domain accounts to a paginated API response.
func MapAccountsToListResponse(accounts []*domain.Account, offset, limit int) ListAccountsResponse {
	items := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, MapAccountToResponse(account))
	}
	return ListAccountsResponse{
		Accounts: items,
		Offset:   offset,
		Limit:    limit,
	}
}
