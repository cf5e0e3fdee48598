// Package dto contains data transfer objects for the credential HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/identity/internal/validation"
)

// SignUpRequest is the payload for POST /v1/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the request payload.
func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
	)
}

// LoginRequest is the payload for POST /v1/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the request payload.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// RefreshRequest is the optional JSON body for POST /v1/refresh.
// The refresh token is usually carried by the cookie or the X-Refresh-Token
// header; the body is the last fallback.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
