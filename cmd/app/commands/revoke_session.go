package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	authUsecase "github.com/allisson/identity/internal/auth/usecase"
)

// RunRevokeSession revokes a refresh session by ID. Once revoked, the refresh
// token bound to the session can no longer be exchanged for access tokens.
//
// Requirements: Database must be migrated and accessible.
func RunRevokeSession(
	ctx context.Context,
	authUseCase authUsecase.AuthUseCase,
	logger *slog.Logger,
	out io.Writer,
	sessionID string,
	format string,
) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session id: %w", err)
	}

	logger.Info("revoking refresh session", slog.String("session_id", id.String()))

	if err := authUseCase.RevokeSession(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	if format == "json" {
		outputRevokeSessionJSON(out, id)
	} else {
		outputRevokeSessionText(out, id)
	}

	logger.Info("session revoked", slog.String("session_id", id.String()))

	return nil
}

// outputRevokeSessionText outputs the result in human-readable text format.
func outputRevokeSessionText(out io.Writer, id uuid.UUID) {
	fmt.Fprintf(out, "Successfully revoked session %s\n", id)
}

// outputRevokeSessionJSON outputs the result in JSON format for machine consumption.
func outputRevokeSessionJSON(out io.Writer, id uuid.UUID) {
	result := map[string]interface{}{
		"session_id": id.String(),
		"revoked":    true,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
