// Package repository provides data persistence implementations for account entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/account/domain"
	"github.com/allisson/identity/internal/database"

	apperrors "github.com/allisson/identity/internal/errors"
)

// PostgreSQLAccountRepository handles account persistence for PostgreSQL
type PostgreSQLAccountRepository struct {
	db *sql.DB
}

// NewPostgreSQLAccountRepository creates a new PostgreSQLAccountRepository
func NewPostgreSQLAccountRepository(db *sql.DB) *PostgreSQLAccountRepository {
	return &PostgreSQLAccountRepository{
		db: db,
	}
}

// Create inserts a new account
func (r *PostgreSQLAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO accounts (id, name, email, password_hash, created_at)
			  VALUES ($1, $2, $3, $4, NOW())`

	_, err := querier.ExecContext(ctx, query, account.ID, account.Name, account.Email, account.PasswordHash)
	if err != nil {
		// Check for unique constraint violation (duplicate email)
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *PostgreSQLAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password_hash, created_at
			  FROM accounts WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by id")
	}

	return &account, nil
}

// GetByEmail retrieves an account by email
func (r *PostgreSQLAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password_hash, created_at
			  FROM accounts WHERE email = $1`

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by email")
	}

	return &account, nil
}

// List retrieves accounts ordered by creation time with offset-based pagination
func (r *PostgreSQLAccountRepository) List(ctx context.Context, offset, limit int) ([]*domain.Account, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password_hash, created_at
			  FROM accounts ORDER BY created_at ASC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := []*domain.Account{}
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(
			&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan account")
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate accounts")
	}

	return accounts, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
