// Package repository provides data persistence implementations for refresh sessions.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/identity/internal/auth/domain"
	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
)

// PostgreSQLSessionRepository implements refresh session persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL refresh session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}

// Create inserts a new refresh session.
func (p *PostgreSQLSessionRepository) Create(ctx context.Context, session *authDomain.RefreshSession) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO refresh_sessions (id, token_hash, account_id, expires_at, revoked_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		session.ID,
		session.TokenHash,
		session.AccountID,
		session.ExpiresAt,
		session.RevokedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create refresh session")
	}
	return nil
}

// GetByTokenHash retrieves a refresh session by the SHA-256 hash of its token value.
// Returns ErrSessionNotFound if no session matches.
func (p *PostgreSQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*authDomain.RefreshSession, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token_hash, account_id, expires_at, revoked_at, created_at
			  FROM refresh_sessions WHERE token_hash = $1`

	var session authDomain.RefreshSession

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.TokenHash,
		&session.AccountID,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get refresh session")
	}

	return &session, nil
}

// Revoke marks a refresh session as revoked. Returns ErrSessionNotFound if
// the session does not exist. Revoking an already revoked session is a no-op.
func (p *PostgreSQLSessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE refresh_sessions
			  SET revoked_at = NOW()
			  WHERE id = $1 AND revoked_at IS NULL`

	result, err := querier.ExecContext(ctx, query, sessionID)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke refresh session")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return authDomain.ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes refresh sessions that expired before the given time.
// Returns the number of deleted rows.
func (p *PostgreSQLSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM refresh_sessions WHERE expires_at < $1`

	result, err := querier.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired refresh sessions")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows")
	}

	return affected, nil
}

// CountExpired counts refresh sessions that expired before the given time.
// Used by the housekeeping command in dry-run mode.
func (p *PostgreSQLSessionRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM refresh_sessions WHERE expires_at < $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired refresh sessions")
	}

	return count, nil
}
