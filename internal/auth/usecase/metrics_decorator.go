package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	"github.com/allisson/identity/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// SignUp records metrics for registration operations.
func (a *authUseCaseWithMetrics) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := a.next.SignUp(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "signup", status)
	a.metrics.RecordDuration(ctx, "auth", "signup", time.Since(start), status)

	return pair, err
}

// Login records metrics for password authentication operations.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return pair, err
}

// Refresh records metrics for refresh exchange operations.
func (a *authUseCaseWithMetrics) Refresh(
	ctx context.Context,
	refreshToken string,
) (*authDomain.AccessTokenOutput, error) {
	start := time.Now()
	output, err := a.next.Refresh(ctx, refreshToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "refresh", status)
	a.metrics.RecordDuration(ctx, "auth", "refresh", time.Since(start), status)

	return output, err
}

// RevokeSession records metrics for session revocation operations.
func (a *authUseCaseWithMetrics) RevokeSession(ctx context.Context, sessionID uuid.UUID) error {
	start := time.Now()
	err := a.next.RevokeSession(ctx, sessionID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "session_revoke", status)
	a.metrics.RecordDuration(ctx, "auth", "session_revoke", time.Since(start), status)

	return err
}

// CleanExpiredSessions records metrics for session housekeeping operations.
func (a *authUseCaseWithMetrics) CleanExpiredSessions(ctx context.Context, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := a.next.CleanExpiredSessions(ctx, dryRun)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "session_clean", status)
	a.metrics.RecordDuration(ctx, "auth", "session_clean", time.Since(start), status)

	return count, err
}
