package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"habit-agent/config"
	redisStorage "habit-agent/internal/adapter/storage/redis"
	"habit-agent/internal/service"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:  "admintoken",
		Usage: "Operator tooling for habit-agent",
		Commands: []*cli.Command{
			mintCmd(cfg),
			verifyCmd(cfg),
			orphansCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func tokenService(cfg *config.Config, ttl time.Duration) (*service.JWTTokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret is not configured (set HABIT_JWT_SECRET)")
	}
	if ttl <= 0 {
		ttl = cfg.JWT.Expiry
	}
	return service.NewJWTTokenService(cfg.JWT.Secret, ttl, cfg.JWT.Issuer), nil
}

// mintCmd prints a fresh operator token.
func mintCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "mint",
		Usage: "Mint an operator token for /api/v1/admin",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Value: "operator", Usage: "Who the token is issued to"},
			&cli.DurationFlag{Name: "ttl", Usage: "Token lifetime (defaults to jwt.expiry)"},
			&cli.BoolFlag{Name: "json", Usage: "Print token and expiry as JSON"},
		},
		Action: func(c *cli.Context) error {
			svc, err := tokenService(cfg, c.Duration("ttl"))
			if err != nil {
				return err
			}
			token, expiry, err := svc.Generate(c.String("subject"))
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return json.NewEncoder(c.App.Writer).Encode(map[string]any{
					"token":      token,
					"expires_at": expiry.UTC().Format(time.RFC3339),
				})
			}
			_, err = fmt.Fprintln(c.App.Writer, token)
			return err
		},
	}
}

// verifyCmd checks a token against the configured secret and issuer.
func verifyCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Validate an operator token",
		ArgsUsage: "<token>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("exactly one token argument is required")
			}
			svc, err := tokenService(cfg, 0)
			if err != nil {
				return err
			}
			claims, err := svc.Validate(c.Args().First())
			if err != nil {
				return fmt.Errorf("token rejected: %w", err)
			}
			_, err = fmt.Fprintf(c.App.Writer, "valid: subject=%s role=%s\n", claims.Subject, claims.Role)
			return err
		},
	}
}

// orphansCmd dumps broadcast transactions whose ledger row was never written.
func orphansCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "orphans",
		Usage: "List journaled transactions awaiting reconciliation",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "limit", Aliases: []string{"n"}, Value: 100, Usage: "Maximum entries, 0 for all"},
		},
		Action: func(c *cli.Context) error {
			rdb, err := redisStorage.NewClient(c.Context, cfg.Redis, zerolog.Nop())
			if err != nil {
				return err
			}
			defer rdb.Close()

			orphans, err := redisStorage.NewReconciliationJournal(rdb).List(c.Context, c.Int64("limit"))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(orphans)
		},
	}
}
