package dto

import (
	"time"

	authDomain "github.com/allisson/identity/internal/auth/domain"
)

// TokenResponse carries a freshly minted access token. The refresh token is
// deliberately absent from the body: it travels in the HTTP-only cookie.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapTokenPairToResponse converts a token pair to its API representation.
func MapTokenPairToResponse(pair *authDomain.TokenPair) TokenResponse {
	return TokenResponse{
		Token:     pair.AccessToken,
		ExpiresAt: pair.AccessExpiresAt,
	}
}

// MapAccessTokenToResponse converts a refresh exchange result to its API representation.
func MapAccessTokenToResponse(output *authDomain.AccessTokenOutput) TokenResponse {
	return TokenResponse{
		Token:     output.AccessToken,
		ExpiresAt: output.ExpiresAt,
	}
}
