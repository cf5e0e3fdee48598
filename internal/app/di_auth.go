package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/identity/internal/auth/http"
	authRepository "github.com/allisson/identity/internal/auth/repository"
	authService "github.com/allisson/identity/internal/auth/service"
	authUsecase "github.com/allisson/identity/internal/auth/usecase"
)

// authComponents groups the credential lifecycle dependencies.
type authComponents struct {
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	sessionRepo     authUsecase.SessionRepository
	useCase         authUsecase.AuthUseCase
	handler         *authHTTP.AuthHandler

	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	sessionRepoInit     sync.Once
	useCaseInit         sync.Once
	handlerInit         sync.Once
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.auth.passwordServiceInit.Do(func() {
		c.auth.passwordService = authService.NewPasswordService()
	})
	return c.auth.passwordService
}

// TokenService returns the token signing service, configured with the
// access and refresh secrets and lifetimes.
func (c *Container) TokenService() authService.TokenService {
	c.auth.tokenServiceInit.Do(func() {
		c.auth.tokenService = authService.NewTokenService(
			c.config.AccessTokenSecret,
			c.config.RefreshTokenSecret,
			c.config.AccessTokenExpiration,
			c.config.RefreshTokenExpiration,
		)
	})
	return c.auth.tokenService
}

// SessionRepository returns the refresh session repository based on the database driver.
func (c *Container) SessionRepository() (authUsecase.SessionRepository, error) {
	c.auth.sessionRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["sessionRepo"] = fmt.Errorf(
				"failed to get database for session repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "postgres":
			c.auth.sessionRepo = authRepository.NewPostgreSQLSessionRepository(db)
		case "mysql":
			c.auth.sessionRepo = authRepository.NewMySQLSessionRepository(db)
		default:
			c.initErrors["sessionRepo"] = fmt.Errorf(
				"unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["sessionRepo"]; exists {
		return nil, storedErr
	}
	return c.auth.sessionRepo, nil
}

// AuthUseCase returns the credential lifecycle use case.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	c.auth.useCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf(
				"failed to get tx manager for auth use case: %w", err)
			return
		}

		accountRepo, err := c.AccountRepository()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf(
				"failed to get account repository for auth use case: %w", err)
			return
		}

		sessionRepo, err := c.SessionRepository()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf(
				"failed to get session repository for auth use case: %w", err)
			return
		}

		baseUseCase := authUsecase.NewAuthUseCase(
			txManager,
			accountRepo,
			sessionRepo,
			c.PasswordService(),
			c.TokenService(),
		)

		// Wrap with metrics if enabled
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["authUseCase"] = fmt.Errorf(
					"failed to get business metrics for auth use case: %w", err)
				return
			}
			c.auth.useCase = authUsecase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics)
			return
		}

		c.auth.useCase = baseUseCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.auth.useCase, nil
}

// AuthHandler returns the HTTP handler for the credential lifecycle endpoints.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	c.auth.handlerInit.Do(func() {
		useCase, err := c.AuthUseCase()
		if err != nil {
			c.initErrors["authHandler"] = fmt.Errorf(
				"failed to get auth use case for auth handler: %w", err)
			return
		}

		c.auth.handler = authHTTP.NewAuthHandler(
			useCase,
			c.config.RefreshTokenExpiration,
			c.config.CookieSecure,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.auth.handler, nil
}
