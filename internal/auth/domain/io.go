package domain

import (
	"time"
)

// SignUpInput contains the input data for account registration.
type SignUpInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput contains the input data for password authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the result of a successful signup or login: a short-lived
// access token plus a longer-lived refresh token backed by a session record.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AccessTokenOutput is the result of a successful refresh exchange.
// Only a new access token is minted; the presented refresh token stays valid.
type AccessTokenOutput struct {
	AccessToken string
	ExpiresAt   time.Time
}
