// Package usecase implements the credential lifecycle business logic.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/identity/internal/account/domain"
	authDomain "github.com/allisson/identity/internal/auth/domain"
)

// AuthUseCase defines the credential lifecycle operations: registration,
// password authentication, refresh exchange and session maintenance.
type AuthUseCase interface {
	// SignUp registers a new account and issues its first token pair.
	SignUp(ctx context.Context, input *authDomain.SignUpInput) (*authDomain.TokenPair, error)

	// Login authenticates an email/password pair and issues a fresh token pair.
	// Prior sessions for the account stay untouched.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.TokenPair, error)

	// Refresh exchanges a refresh token for a new access token.
	// The presented refresh token stays usable.
	Refresh(ctx context.Context, refreshToken string) (*authDomain.AccessTokenOutput, error)

	// RevokeSession marks a refresh session as revoked so it can no longer
	// be exchanged. Triggered externally via the CLI.
	RevokeSession(ctx context.Context, sessionID uuid.UUID) error

	// CleanExpiredSessions removes refresh sessions whose expiry has passed.
	// With dryRun it only counts what would be removed.
	CleanExpiredSessions(ctx context.Context, dryRun bool) (int64, error)
}

// AccountRepository defines the account persistence operations the auth
// use case depends on.
type AccountRepository interface {
	Create(ctx context.Context, account *accountDomain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*accountDomain.Account, error)
	GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error)
}

// SessionRepository defines the refresh session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, session *authDomain.RefreshSession) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.RefreshSession, error)
	Revoke(ctx context.Context, sessionID uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
	CountExpired(ctx context.Context, before time.Time) (int64, error)
}
