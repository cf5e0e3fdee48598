// Package http provides HTTP handlers and middleware for credential operations.
package http

import (
	"context"

	"github.com/google/uuid"
)

// accountIDKey is a context key type for storing the authenticated account ID.
type accountIDKey struct{}

// WithAccountID stores an authenticated account ID in the context.
// This is called by the authentication middleware after successful token verification.
func WithAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID)
}

// GetAccountID retrieves the authenticated account ID from the context.
// Returns (id, true) if present, or (uuid.Nil, false) if no account was set.
func GetAccountID(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := ctx.Value(accountIDKey{}).(uuid.UUID)
	return accountID, ok
}
