// Package usecase implements the account business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/account/domain"
)

// UseCase defines the interface for account business logic operations
type UseCase interface {
	GetAccountByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListAccounts(ctx context.Context, offset, limit int) ([]*domain.Account, error)
}

// AccountRepository interface defines account repository operations
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Account, error)
}

// AccountUseCase handles account-related business logic
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
	}
}

// GetAccountByID retrieves an account by ID
func (uc *AccountUseCase) GetAccountByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts retrieves accounts with offset-based pagination
func (uc *AccountUseCase) ListAccounts(ctx context.Context, offset, limit int) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx, offset, limit)
}
