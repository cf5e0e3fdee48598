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

// MySQLAccountRepository handles account persistence for MySQL
type MySQLAccountRepository struct {
	db *sql.DB
}

// NewMySQLAccountRepository creates a new MySQLAccountRepository
func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{
		db: db,
	}
}

// Create inserts a new account
func (r *MySQLAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO accounts (id, name, email, password_hash, created_at)
			  VALUES (?, ?, ?, ?, NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := account.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, uuidBytes, account.Name, account.Email, account.PasswordHash)
	if err != nil {
		// Check for unique constraint violation (duplicate email)
		if isMySQLUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *MySQLAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password_hash, created_at
			  FROM accounts WHERE id = ?`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by id")
	}

	// Convert bytes back to UUID
	if err := account.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &account, nil
}

// GetByEmail retrieves an account by email
func (r *MySQLAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password_hash, created_at
			  FROM accounts WHERE email = ?`

	var idBytes []byte
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&idBytes, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account by email")
	}

	// Convert bytes back to UUID
	if err := account.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &account, nil
}

// List retrieves accounts ordered by creation time with offset-based pagination
func (r *MySQLAccountRepository) List(ctx context.Context, offset, limit int) ([]*domain.Account, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, password_hash, created_at
			  FROM accounts ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accounts")
	}
	defer rows.Close()

	accounts := []*domain.Account{}
	for rows.Next() {
		var account domain.Account
		var idBytes []byte
		err := rows.Scan(
			&idBytes, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan account")
		}
		if err := account.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate accounts")
	}

	return accounts, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
