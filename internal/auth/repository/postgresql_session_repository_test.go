package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/identity/internal/auth/domain"
)

func newSession() *authDomain.RefreshSession {
	return authDomain.NewRefreshSession(
		uuid.Must(uuid.NewV7()),
		"2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae",
		time.Now().Add(7*24*time.Hour),
	)
}

func TestPostgreSQLSessionRepository_Create(t *testing.T) {
	t.Run("Success_CreateSession", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		session := newSession()

		mock.ExpectExec("INSERT INTO refresh_sessions").
			WithArgs(session.ID, session.TokenHash, session.AccountID, session.ExpiresAt, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Create(context.Background(), session)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DatabaseFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)

		mock.ExpectExec("INSERT INTO refresh_sessions").
			WillReturnError(assert.AnError)

		err = repo.Create(context.Background(), newSession())
		require.Error(t, err)
	})
}

func TestPostgreSQLSessionRepository_GetByTokenHash(t *testing.T) {
	t.Run("Success_GetSession", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		session := newSession()
		session.CreatedAt = time.Now()

		rows := sqlmock.NewRows(
			[]string{"id", "token_hash", "account_id", "expires_at", "revoked_at", "created_at"},
		).AddRow(
			session.ID.String(), session.TokenHash, session.AccountID.String(),
			session.ExpiresAt, nil, session.CreatedAt,
		)

		mock.ExpectQuery("SELECT id, token_hash, account_id, expires_at, revoked_at, created_at").
			WithArgs(session.TokenHash).
			WillReturnRows(rows)

		got, err := repo.GetByTokenHash(context.Background(), session.TokenHash)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, session.AccountID, got.AccountID)
		assert.Nil(t, got.RevokedAt)
	})

	t.Run("Success_RevokedSession", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		session := newSession()
		revokedAt := time.Now()

		rows := sqlmock.NewRows(
			[]string{"id", "token_hash", "account_id", "expires_at", "revoked_at", "created_at"},
		).AddRow(
			session.ID.String(), session.TokenHash, session.AccountID.String(),
			session.ExpiresAt, revokedAt, time.Now(),
		)

		mock.ExpectQuery("SELECT id, token_hash, account_id, expires_at, revoked_at, created_at").
			WithArgs(session.TokenHash).
			WillReturnRows(rows)

		got, err := repo.GetByTokenHash(context.Background(), session.TokenHash)
		require.NoError(t, err)
		assert.True(t, got.IsRevoked())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)

		mock.ExpectQuery("SELECT id, token_hash, account_id, expires_at, revoked_at, created_at").
			WithArgs("unknown-hash").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "token_hash", "account_id", "expires_at", "revoked_at", "created_at"},
			))

		got, err := repo.GetByTokenHash(context.Background(), "unknown-hash")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrSessionNotFound)
	})
}

func TestPostgreSQLSessionRepository_Revoke(t *testing.T) {
	t.Run("Success_RevokeSession", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		sessionID := uuid.Must(uuid.NewV7())

		mock.ExpectExec("UPDATE refresh_sessions").
			WithArgs(sessionID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Revoke(context.Background(), sessionID)
		require.NoError(t, err)
	})

	t.Run("Error_SessionNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		sessionID := uuid.Must(uuid.NewV7())

		mock.ExpectExec("UPDATE refresh_sessions").
			WithArgs(sessionID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Revoke(context.Background(), sessionID)
		require.Error(t, err)
		assert.ErrorIs(t, err, authDomain.ErrSessionNotFound)
	})
}

func TestPostgreSQLSessionRepository_DeleteExpired(t *testing.T) {
	t.Run("Success_DeleteExpiredSessions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		before := time.Now()

		mock.ExpectExec("DELETE FROM refresh_sessions").
			WithArgs(before).
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.DeleteExpired(context.Background(), before)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Success_NothingToDelete", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		before := time.Now()

		mock.ExpectExec("DELETE FROM refresh_sessions").
			WithArgs(before).
			WillReturnResult(sqlmock.NewResult(0, 0))

		count, err := repo.DeleteExpired(context.Background(), before)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestPostgreSQLSessionRepository_CountExpired(t *testing.T) {
	t.Run("Success_CountExpiredSessions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgreSQLSessionRepository(db)
		before := time.Now()

		mock.ExpectQuery("SELECT COUNT").
			WithArgs(before).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		count, err := repo.CountExpired(context.Background(), before)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}
