// Package domain defines the core account domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/errors"
)

// Account represents a registered principal in the system.
// The password hash is an Argon2id encoded string and is never exposed
// through the HTTP layer.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Domain-specific errors for account operations.
var (
	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrEmailTaken indicates an account with the same email already exists.
	// Enforcement is the unique index on accounts.email, not a check-then-act read.
	ErrEmailTaken = errors.Wrap(errors.ErrConflict, "email already registered")
)
