package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/floorboard/service/internal/auth"
	"github.com/floorboard/service/internal/config"
	"github.com/floorboard/service/internal/db"
	"github.com/floorboard/service/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	var down int
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  "Applies all pending migrations, or rolls back the given number of steps with --down.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			log := logger.Setup(cfg.IsProduction())

			if down > 0 {
				if err := db.MigrateDown(cfg.DatabaseURL, down); err != nil {
					return err
				}
				log.Info("migrations rolled back", "steps", down)
				return nil
			}
			if err := db.Migrate(cfg.DatabaseURL); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
	cmd.Flags().IntVar(&down, "down", 0, "roll back this many migrations instead of applying")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		adminID string
		email   string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an admin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if adminID == "" {
				return errors.New("--admin is required")
			}
			cfg := config.Load()
			tok, err := auth.IssueToken(cfg.JWTSecret, adminID, email, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVar(&adminID, "admin", "", "admin id to embed as the token subject")
	cmd.Flags().StringVar(&email, "email", "", "admin email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
