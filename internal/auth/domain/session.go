// Package domain defines the core credential lifecycle entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSession is the durable record backing a refresh token. The token
// value itself is never persisted; TokenHash holds its SHA-256 hex digest
// and is the unique lookup key. A session is live while RevokedAt is nil
// and ExpiresAt is in the future.
type RefreshSession struct {
	ID        uuid.UUID
	TokenHash string
	AccountID uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsRevoked reports whether the session has been revoked.
func (s *RefreshSession) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired reports whether the session has expired at the given time.
func (s *RefreshSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// NewRefreshSession creates a session record for a freshly minted refresh token.
func NewRefreshSession(accountID uuid.UUID, tokenHash string, expiresAt time.Time) *RefreshSession {
	return &RefreshSession{
		ID:        uuid.Must(uuid.NewV7()),
		TokenHash: tokenHash,
		AccountID: accountID,
		ExpiresAt: expiresAt,
	}
}
