// Package service provides technical services for credential operations.
//
// This package implements reusable services for password hashing and
// signed-token issuance using industry-standard cryptographic practices.
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClass selects which signing secret a token is issued and verified
// under. Access and refresh tokens use cryptographically distinct secrets,
// so a token of one class can never verify under the other.
type TokenClass string

const (
	// AccessTokenClass is the class for short-lived access tokens.
	AccessTokenClass TokenClass = "access"

	// RefreshTokenClass is the class for longer-lived refresh tokens.
	RefreshTokenClass TokenClass = "refresh"
)

// PasswordService defines operations for password hashing and verification.
// Implementations must use industry-standard hashing algorithms
// (e.g., bcrypt, argon2) with a random salt per call.
type PasswordService interface {
	// HashPassword hashes a plain text password using a secure hashing algorithm.
	// Two calls with the same input produce different encodings.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword compares a plain text password against a stored hash.
	// Returns true if the password matches, false otherwise. A malformed
	// stored hash verifies false, never an error. This is constant-time to
	// prevent timing attacks.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// TokenService defines operations for signed-token issuance and verification.
type TokenService interface {
	// SignAccessToken mints a short-lived access token bound to an account.
	// Returns the signed token and its expiry.
	SignAccessToken(accountID uuid.UUID, now time.Time) (token string, expiresAt time.Time, err error)

	// SignRefreshToken mints a longer-lived refresh token bound to an account.
	// Returns the signed token and its expiry.
	SignRefreshToken(accountID uuid.UUID, now time.Time) (token string, expiresAt time.Time, err error)

	// VerifyToken validates a token under the given class at the given time and
	// returns the account ID it is bound to. Every failure mode (bad signature,
	// malformed structure, wrong class, expiry) yields the same error so callers
	// cannot distinguish an expired token from a forged one.
	VerifyToken(token string, class TokenClass, now time.Time) (uuid.UUID, error)

	// HashToken hashes a token value using SHA-256.
	// Used as the lookup key for refresh session records, so the raw
	// token value is never persisted.
	HashToken(token string) string
}
