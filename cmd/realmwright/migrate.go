// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package main

import (
	"fmt"
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/realmwright/realmwright/internal/config"
	"github.com/realmwright/realmwright/internal/store"
)

// migrateConfig holds configuration for the migrate subcommand.
type migrateConfig struct {
	down  bool
	steps int
}

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	cfg := &migrateConfig{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Apply pending database migrations against the PostgreSQL database.
Use --down to roll back everything, or --steps to move a fixed number
of migrations in either direction.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.down, "down", false, "roll back all migrations (destructive)")
	cmd.Flags().IntVar(&cfg.steps, "steps", 0, "apply exactly n migrations (negative rolls back)")

	return cmd
}

func runMigrate(cmd *cobra.Command, cfg *migrateConfig) error {
	if cfg.down && cfg.steps != 0 {
		return oops.Code("CONFIG_INVALID").Errorf("--down and --steps are mutually exclusive")
	}

	conf, err := config.Load(configFile, nil)
	if err != nil {
		return err
	}
	if conf.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database_url is required (set DATABASE_URL)")
	}

	migrator, err := store.NewMigrator(conf.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			slog.Warn("error closing migrator", "error", closeErr)
		}
	}()

	switch {
	case cfg.down:
		cmd.Println("Rolling back all migrations...")
		if err := migrator.Down(); err != nil {
			return err
		}
		cmd.Println("Rollback completed")
	case cfg.steps != 0:
		cmd.Printf("Applying %d migration step(s)...\n", cfg.steps)
		if err := migrator.Steps(cfg.steps); err != nil {
			return err
		}
		cmd.Println("Steps completed")
	default:
		cmd.Println("Running migrations...")
		if err := migrator.Up(); err != nil {
			return err
		}
		cmd.Println("Migrations completed successfully")
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	cmd.Println(formatMigrationVersion(version, dirty))
	return nil
}

func formatMigrationVersion(version uint, dirty bool) string {
	if version == 0 {
		return "Schema at version 0 (empty)"
	}
	name, err := store.MigrationName(version)
	if err != nil {
		name = "unknown"
	}
	state := ""
	if dirty {
		state = " (dirty, manual intervention required)"
	}
	return fmt.Sprintf("Schema at version %d (%s)%s", version, name, state)
}
