package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/identity/internal/errors"
)

// passwordService implements PasswordService using Argon2id hashing.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plain text password using Argon2id.
func (s *passwordService) HashPassword(plainPassword string) (string, error) {
	hashedPassword, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// ComparePassword performs a constant-time comparison between a plain password
// and its stored hash. A malformed hash verifies false.
func (s *passwordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a new PasswordService instance using Argon2id hashing.
// Uses the Interactive policy suited for login-path latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
