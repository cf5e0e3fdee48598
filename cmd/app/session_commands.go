package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/identity/cmd/app/commands"
	"github.com/allisson/identity/internal/app"
	"github.com/allisson/identity/internal/config"
)

func getSessionCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "revoke-session",
			Usage: "Revoke a refresh session so its token can no longer be exchanged",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Refresh session ID (UUID)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				authUseCase, err := container.AuthUseCase()
				if err != nil {
					return err
				}

				return commands.RunRevokeSession(
					ctx,
					authUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "clean-expired-sessions",
			Usage: "Delete refresh sessions whose expiry has passed",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Value:   false,
					Usage:   "Show how many sessions would be deleted without deleting",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				authUseCase, err := container.AuthUseCase()
				if err != nil {
					return err
				}

				return commands.RunCleanExpiredSessions(
					ctx,
					authUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Bool("dry-run"),
					cmd.String("format"),
				)
			},
		},
	}
}
