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

// MySQLSessionRepository implements refresh session persistence for MySQL.
// UUIDs are stored as BINARY(16) with transaction support via database.GetTx().
type MySQLSessionRepository struct {
	db *sql.DB
}

// NewMySQLSessionRepository creates a new MySQL refresh session repository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}

// Create inserts a new refresh session.
func (m *MySQLSessionRepository) Create(ctx context.Context, session *authDomain.RefreshSession) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO refresh_sessions (id, token_hash, account_id, expires_at, revoked_at, created_at)
			  VALUES (?, ?, ?, ?, ?, NOW())`

	idBytes, err := session.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	accountIDBytes, err := session.AccountID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
		session.TokenHash,
		accountIDBytes,
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
func (m *MySQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*authDomain.RefreshSession, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token_hash, account_id, expires_at, revoked_at, created_at
			  FROM refresh_sessions WHERE token_hash = ?`

	var session authDomain.RefreshSession
	var idBytes, accountIDBytes []byte

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&idBytes,
		&session.TokenHash,
		&accountIDBytes,
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

	if err := session.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := session.AccountID.UnmarshalBinary(accountIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &session, nil
}

// Revoke marks a refresh session as revoked. Returns ErrSessionNotFound if
// the session does not exist. Revoking an already revoked session is a no-op.
func (m *MySQLSessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE refresh_sessions
			  SET revoked_at = NOW()
			  WHERE id = ? AND revoked_at IS NULL`

	idBytes, err := sessionID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, idBytes)
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
func (m *MySQLSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM refresh_sessions WHERE expires_at < ?`

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
func (m *MySQLSessionRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM refresh_sessions WHERE expires_at < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired refresh sessions")
	}

	return count, nil
}
