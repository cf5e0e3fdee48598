package domain

import (
	"github.com/allisson/identity/internal/errors"
)

// Domain-specific errors for credential operations.
var (
	// ErrInvalidCredentials indicates the email/password pair does not match any
	// account. The same value is returned for an unknown email and a wrong
	// password so responses cannot be used to probe for registered emails.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates a presented access token failed verification.
	// Expired, forged, malformed and wrong-class tokens are indistinguishable.
	ErrInvalidToken = errors.Wrap(errors.ErrForbidden, "invalid token")

	// ErrInvalidRefreshToken indicates a presented refresh token failed
	// verification or its session record is absent or revoked.
	ErrInvalidRefreshToken = errors.Wrap(errors.ErrForbidden, "invalid refresh token")

	// ErrMissingRefreshToken indicates no refresh token was presented at all.
	ErrMissingRefreshToken = errors.Wrap(errors.ErrUnauthorized, "refresh token is required")

	// ErrSessionNotFound indicates the refresh session record does not exist.
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "refresh session not found")
)
