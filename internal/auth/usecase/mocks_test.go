package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	accountDomain "github.com/allisson/identity/internal/account/domain"
	authDomain "github.com/allisson/identity/internal/auth/domain"
	authService "github.com/allisson/identity/internal/auth/service"
)

// fakeTxManager runs the transactional function directly.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) Create(ctx context.Context, account *accountDomain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockAccountRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

func (m *mockAccountRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *authDomain.RefreshSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*authDomain.RefreshSession, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.RefreshSession), args.Error(1)
}

func (m *mockSessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSessionRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) ComparePassword(plainPassword, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) SignAccessToken(
	accountID uuid.UUID,
	now time.Time,
) (string, time.Time, error) {
	args := m.Called(accountID, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) SignRefreshToken(
	accountID uuid.UUID,
	now time.Time,
) (string, time.Time, error) {
	args := m.Called(accountID, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) VerifyToken(
	token string,
	class authService.TokenClass,
	now time.Time,
) (uuid.UUID, error) {
	args := m.Called(token, class, now)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTokenService) HashToken(token string) string {
	args := m.Called(token)
	return args.String(0)
}
