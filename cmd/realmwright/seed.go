// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/realmwright/realmwright/internal/auth"
	authpg "github.com/realmwright/realmwright/internal/auth/postgres"
	"github.com/realmwright/realmwright/internal/config"
	"github.com/realmwright/realmwright/internal/store"
	"github.com/realmwright/realmwright/internal/world"
	worldpg "github.com/realmwright/realmwright/internal/world/postgres"
)

// Default timeout for seed command.
const defaultSeedTimeout = 30 * time.Second

// Well-known ids make re-running the seed a no-op instead of a duplicate.
// ULIDs must be exactly 26 characters of Crockford's base32 alphabet.
const (
	seedUserID     = "01J00000000000000000SEEDER"
	seedWorldID    = "01J00000000000000000000WRD"
	seedLocationID = "01J000000000000000000START"

	seedUsername = "warden"
	seedEmail    = "warden@example.com"
	seedPassword = "change-me-on-first-login"
)

// seedConfig holds configuration for the seed command.
type seedConfig struct {
	timeout time.Duration
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with a demo account and world",
		Long: `Creates a demo account owning a sample world with a starting
location. This command is idempotent; rows that already exist are
left alone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, cfg)
		},
	}

	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultSeedTimeout, "timeout for database operations (e.g., 30s, 1m)")

	return cmd
}

func runSeed(cmd *cobra.Command, cfg *seedConfig) error {
	conf, err := config.Load(configFile, nil)
	if err != nil {
		return err
	}
	if conf.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database_url is required (set DATABASE_URL)")
	}

	// Use cmd.Context() so SIGINT/SIGTERM interrupt the seed.
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
	defer cancel()

	cmd.Println("Connecting to database...")
	pool, err := store.NewPool(ctx, conf.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	cmd.Println("Running migrations...")
	migrator, err := store.NewMigrator(conf.DatabaseURL)
	if err != nil {
		return err
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close() //nolint:errcheck // migration error takes precedence
		return err
	}
	if err := migrator.Close(); err != nil {
		slog.Warn("error closing migrator", "error", err)
	}

	userID, err := seedDemoUser(ctx, cmd, authpg.NewUserRepository(pool))
	if err != nil {
		return err
	}
	if err := seedDemoWorld(ctx, cmd, pool, userID); err != nil {
		return err
	}

	cmd.Println("Seeding complete!")
	return nil
}

func seedDemoUser(ctx context.Context, cmd *cobra.Command, users *authpg.UserRepository) (ulid.ULID, error) {
	userID, err := ulid.Parse(seedUserID)
	if err != nil {
		return ulid.ULID{}, oops.Code("SEED_FAILED").With("operation", "parse seed user ID").Wrap(err)
	}

	hash, err := auth.NewArgon2idHasher().Hash(seedPassword)
	if err != nil {
		return ulid.ULID{}, oops.Code("SEED_FAILED").With("operation", "hash seed password").Wrap(err)
	}

	now := time.Now().UTC()
	user := &auth.User{
		ID:           userID,
		Username:     seedUsername,
		Email:        seedEmail,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, auth.ErrAlreadyExists) {
			cmd.Println("Demo account already exists, skipping")
			existing, getErr := users.GetByUsername(ctx, seedUsername)
			if getErr != nil {
				return ulid.ULID{}, oops.Code("SEED_FAILED").With("operation", "look up existing demo account").Wrap(getErr)
			}
			return existing.ID, nil
		}
		return ulid.ULID{}, oops.Code("SEED_FAILED").With("operation", "create demo account").Wrap(err)
	}

	cmd.Printf("Created demo account %q (password: %s)\n", seedUsername, seedPassword)
	slog.Info("created demo account", "user_id", userID, "username", seedUsername)
	return userID, nil
}

func seedDemoWorld(ctx context.Context, cmd *cobra.Command, db worldpg.DB, ownerID ulid.ULID) error {
	worldID, err := ulid.Parse(seedWorldID)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "parse seed world ID").Wrap(err)
	}
	locationID, err := ulid.Parse(seedLocationID)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "parse seed location ID").Wrap(err)
	}

	worlds := worldpg.NewWorldRepository(db)
	if _, err := worlds.Get(ctx, worldID); err == nil {
		cmd.Println("Demo world already exists, skipping")
		return nil
	} else if !errors.Is(err, world.ErrNotFound) {
		return oops.Code("SEED_FAILED").With("operation", "check for demo world").Wrap(err)
	}

	summary := "A sample world to explore the editor with."
	name := "The Shattered Vale"
	w := &world.World{
		ID:        worldID,
		OwnerID:   ownerID,
		Name:      name,
		Slug:      world.Slugify(name),
		Summary:   &summary,
		IsPrivate: true,
		CreatedAt: time.Now().UTC(),
	}
	if err := worlds.Create(ctx, w); err != nil {
		return oops.Code("SEED_FAILED").With("operation", "create demo world").Wrap(err)
	}

	locType := "settlement"
	locSummary := "The last refuge at the heart of the vale."
	now := time.Now().UTC()
	loc := &world.Location{
		ID:        locationID,
		WorldID:   worldID,
		Name:      "Hearthhold",
		Type:      &locType,
		Summary:   &locSummary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := worldpg.NewLocationRepository(db).Create(ctx, loc); err != nil {
		return oops.Code("SEED_FAILED").With("operation", "create starting location").Wrap(err)
	}

	cmd.Printf("Created demo world %q with starting location %q\n", w.Name, loc.Name)
	slog.Info("created demo world", "world_id", worldID, "location_id", locationID)
	return nil
}
