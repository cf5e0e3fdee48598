package app

import (
	"fmt"
	"sync"

	accountHTTP "github.com/allisson/identity/internal/account/http"
	accountRepository "github.com/allisson/identity/internal/account/repository"
	accountUsecase "github.com/allisson/identity/internal/account/usecase"
)

// accountComponents groups the account bounded context dependencies.
type accountComponents struct {
	repo    accountUsecase.AccountRepository
	useCase accountUsecase.UseCase
	handler *accountHTTP.AccountHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// AccountRepository returns the account repository based on the database driver.
func (c *Container) AccountRepository() (accountUsecase.AccountRepository, error) {
	c.account.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["accountRepo"] = fmt.Errorf(
				"failed to get database for account repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "postgres":
			c.account.repo = accountRepository.NewPostgreSQLAccountRepository(db)
		case "mysql":
			c.account.repo = accountRepository.NewMySQLAccountRepository(db)
		default:
			c.initErrors["accountRepo"] = fmt.Errorf(
				"unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["accountRepo"]; exists {
		return nil, storedErr
	}
	return c.account.repo, nil
}

// AccountUseCase returns the account use case instance.
func (c *Container) AccountUseCase() (accountUsecase.UseCase, error) {
	c.account.useCaseInit.Do(func() {
		repo, err := c.AccountRepository()
		if err != nil {
			c.initErrors["accountUseCase"] = fmt.Errorf(
				"failed to get account repository for account use case: %w", err)
			return
		}
		c.account.useCase = accountUsecase.NewAccountUseCase(repo)
	})
	if storedErr, exists := c.initErrors["accountUseCase"]; exists {
		return nil, storedErr
	}
	return c.account.useCase, nil
}

// AccountHandler returns the HTTP handler for account operations.
func (c *Container) AccountHandler() (*accountHTTP.AccountHandler, error) {
	c.account.handlerInit.Do(func() {
		useCase, err := c.AccountUseCase()
		if err != nil {
			c.initErrors["accountHandler"] = fmt.Errorf(
				"failed to get account use case for account handler: %w", err)
			return
		}
		c.account.handler = accountHTTP.NewAccountHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["accountHandler"]; exists {
		return nil, storedErr
	}
	return c.account.handler, nil
}
