package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	authMocks "github.com/allisson/identity/internal/auth/http/mocks"
)

func TestRunCleanExpiredSessions(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &authMocks.AuthUseCase{}
		mockUseCase.On("CleanExpiredSessions", ctx, false).Return(int64(10), nil)

		var out bytes.Buffer
		err := RunCleanExpiredSessions(ctx, mockUseCase, logger, &out, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 10 expired session(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &authMocks.AuthUseCase{}
		mockUseCase.On("CleanExpiredSessions", ctx, true).Return(int64(5), nil)

		var out bytes.Buffer
		err := RunCleanExpiredSessions(ctx, mockUseCase, logger, &out, true, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 5`)
		require.Contains(t, out.String(), `"dry_run": true`)
		mockUseCase.AssertExpectations(t)
	})
}
