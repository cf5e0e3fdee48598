package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authUsecase "github.com/allisson/identity/internal/auth/usecase"
)

// RunCleanExpiredSessions deletes refresh sessions whose expiry has passed.
// Supports dry-run mode to preview the deletion count and both text/JSON output
// formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredSessions(
	ctx context.Context,
	authUseCase authUsecase.AuthUseCase,
	logger *slog.Logger,
	out io.Writer,
	dryRun bool,
	format string,
) error {
	logger.Info("cleaning expired sessions", slog.Bool("dry_run", dryRun))

	count, err := authUseCase.CleanExpiredSessions(ctx, dryRun)
	if err != nil {
		return fmt.Errorf("failed to clean expired sessions: %w", err)
	}

	if format == "json" {
		outputCleanExpiredSessionsJSON(out, count, dryRun)
	} else {
		outputCleanExpiredSessionsText(out, count, dryRun)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

// outputCleanExpiredSessionsText outputs the result in human-readable text format.
func outputCleanExpiredSessionsText(out io.Writer, count int64, dryRun bool) {
	if dryRun {
		fmt.Fprintf(out, "Dry-run mode: Would delete %d expired session(s)\n", count)
	} else {
		fmt.Fprintf(out, "Successfully deleted %d expired session(s)\n", count)
	}
}

// outputCleanExpiredSessionsJSON outputs the result in JSON format for machine consumption.
func outputCleanExpiredSessionsJSON(out io.Writer, count int64, dryRun bool) {
	result := map[string]interface{}{
		"count":   count,
		"dry_run": dryRun,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
