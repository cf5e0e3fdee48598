package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/identity/internal/account/domain"
	authDomain "github.com/allisson/identity/internal/auth/domain"
	authService "github.com/allisson/identity/internal/auth/service"
	"github.com/allisson/identity/internal/database"
	"github.com/allisson/identity/internal/errors"
	appValidation "github.com/allisson/identity/internal/validation"
)

// authUseCase implements AuthUseCase over the account and session repositories.
type authUseCase struct {
	txManager       database.TxManager
	accountRepo     AccountRepository
	sessionRepo     SessionRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	txManager database.TxManager,
	accountRepo AccountRepository,
	sessionRepo SessionRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) AuthUseCase {
	return &authUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		sessionRepo:     sessionRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// validateSignUpInput validates the registration input using jellydator/validation.
func (uc *authUseCase) validateSignUpInput(input *authDomain.SignUpInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// validateLoginInput validates the authentication input using jellydator/validation.
func (uc *authUseCase) validateLoginInput(input *authDomain.LoginInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// SignUp registers a new account and issues its first token pair.
// The account row and the refresh session row are created in one transaction,
// so a duplicate email leaves no session behind.
func (uc *authUseCase) SignUp(
	ctx context.Context,
	input *authDomain.SignUpInput,
) (*authDomain.TokenPair, error) {
	if err := uc.validateSignUpInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := &accountDomain.Account{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		PasswordHash: hashedPassword,
	}

	pair, session, err := uc.mintTokenPair(account.ID)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		// Duplicate email surfaces here as ErrEmailTaken from the unique index.
		if err := uc.accountRepo.Create(ctx, account); err != nil {
			return err
		}
		return uc.sessionRepo.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// Login authenticates an email/password pair and issues a fresh token pair.
// An unknown email and a wrong password return the identical error value.
func (uc *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.TokenPair, error) {
	if err := uc.validateLoginInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountDomain.ErrAccountNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.passwordService.ComparePassword(input.Password, account.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	pair, session, err := uc.mintTokenPair(account.ID)
	if err != nil {
		return nil, err
	}

	// Prior sessions stay untouched: multiple live sessions per account.
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return pair, nil
}

// Refresh exchanges a refresh token for a new access token. The session row
// must exist and be unrevoked, and the token itself must verify under the
// refresh class. The presented token stays usable afterwards.
func (uc *authUseCase) Refresh(
	ctx context.Context,
	refreshToken string,
) (*authDomain.AccessTokenOutput, error) {
	if refreshToken == "" {
		return nil, authDomain.ErrMissingRefreshToken
	}

	session, err := uc.sessionRepo.GetByTokenHash(ctx, uc.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, authDomain.ErrSessionNotFound) {
			return nil, authDomain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	if session.IsRevoked() {
		return nil, authDomain.ErrInvalidRefreshToken
	}

	now := time.Now().UTC()

	accountID, err := uc.tokenService.VerifyToken(refreshToken, authService.RefreshTokenClass, now)
	if err != nil {
		return nil, authDomain.ErrInvalidRefreshToken
	}

	// The owning account may have been removed since the session was minted.
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	accessToken, expiresAt, err := uc.tokenService.SignAccessToken(account.ID, now)
	if err != nil {
		return nil, err
	}

	return &authDomain.AccessTokenOutput{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// RevokeSession marks a refresh session as revoked.
func (uc *authUseCase) RevokeSession(ctx context.Context, sessionID uuid.UUID) error {
	return uc.sessionRepo.Revoke(ctx, sessionID)
}

// CleanExpiredSessions removes refresh sessions whose expiry has passed.
// With dryRun it only reports how many rows would be removed.
func (uc *authUseCase) CleanExpiredSessions(ctx context.Context, dryRun bool) (int64, error) {
	now := time.Now().UTC()
	if dryRun {
		return uc.sessionRepo.CountExpired(ctx, now)
	}
	return uc.sessionRepo.DeleteExpired(ctx, now)
}

// mintTokenPair signs both tokens for an account and builds the session
// record backing the refresh token.
func (uc *authUseCase) mintTokenPair(
	accountID uuid.UUID,
) (*authDomain.TokenPair, *authDomain.RefreshSession, error) {
	now := time.Now().UTC()

	accessToken, accessExpiresAt, err := uc.tokenService.SignAccessToken(accountID, now)
	if err != nil {
		return nil, nil, err
	}

	refreshToken, refreshExpiresAt, err := uc.tokenService.SignRefreshToken(accountID, now)
	if err != nil {
		return nil, nil, err
	}

	session := authDomain.NewRefreshSession(
		accountID,
		uc.tokenService.HashToken(refreshToken),
		refreshExpiresAt,
	)

	pair := &authDomain.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}

	return pair, session, nil
}
