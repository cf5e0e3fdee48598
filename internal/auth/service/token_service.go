package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	apperrors "github.com/allisson/identity/internal/errors"
)

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
// Access and refresh tokens are signed with distinct secrets selected by class.
type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// SignAccessToken mints a short-lived access token bound to an account.
func (t *tokenService) SignAccessToken(accountID uuid.UUID, now time.Time) (string, time.Time, error) {
	return t.sign(accountID, now, t.accessTTL, t.accessSecret)
}

// SignRefreshToken mints a longer-lived refresh token bound to an account.
func (t *tokenService) SignRefreshToken(accountID uuid.UUID, now time.Time) (string, time.Time, error) {
	return t.sign(accountID, now, t.refreshTTL, t.refreshSecret)
}

func (t *tokenService) sign(
	accountID uuid.UUID,
	now time.Time,
	ttl time.Duration,
	secret []byte,
) (string, time.Time, error) {
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// VerifyToken validates a token under the given class at the given time and
// returns the account ID it carries. Bad signature, malformed structure, a
// token signed for the other class and expiry all collapse into the single
// ErrInvalidToken outcome.
func (t *tokenService) VerifyToken(token string, class TokenClass, now time.Time) (uuid.UUID, error) {
	secret := t.accessSecret
	if class == RefreshTokenClass {
		secret = t.refreshSecret
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, authDomain.ErrInvalidToken
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, authDomain.ErrInvalidToken
	}

	return accountID, nil
}

// HashToken hashes a token value using SHA-256.
// Returns the hash as a hexadecimal string.
func (t *tokenService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// NewTokenService creates a TokenService signing with distinct access and
// refresh secrets. Secret distinctness is enforced at config validation time.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &tokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}
