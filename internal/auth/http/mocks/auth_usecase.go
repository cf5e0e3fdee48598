// Package mocks provides testify mocks for credential use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/identity/internal/auth/domain"
)

// AuthUseCase is a mock implementation of usecase.AuthUseCase.
type AuthUseCase struct {
	mock.Mock
}

// SignUp mocks account registration.
func (m *AuthUseCase) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

// Login mocks password authentication.
func (m *AuthUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

// Refresh mocks the refresh exchange.
func (m *AuthUseCase) Refresh(
	ctx context.Context,
	refreshToken string,
) (*authDomain.AccessTokenOutput, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AccessTokenOutput), args.Error(1)
}

// RevokeSession mocks session revocation.
func (m *AuthUseCase) RevokeSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// CleanExpiredSessions mocks the housekeeping sweep.
func (m *AuthUseCase) CleanExpiredSessions(ctx context.Context, dryRun bool) (int64, error) {
	args := m.Called(ctx, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
