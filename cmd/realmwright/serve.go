// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/realmwright/realmwright/internal/auth"
	authpg "github.com/realmwright/realmwright/internal/auth/postgres"
	"github.com/realmwright/realmwright/internal/config"
	"github.com/realmwright/realmwright/internal/logging"
	"github.com/realmwright/realmwright/internal/observability"
	"github.com/realmwright/realmwright/internal/session"
	"github.com/realmwright/realmwright/internal/store"
	"github.com/realmwright/realmwright/internal/view"
	"github.com/realmwright/realmwright/internal/web"
	"github.com/realmwright/realmwright/internal/world"
	worldpg "github.com/realmwright/realmwright/internal/world/postgres"
)

const shutdownTimeout = 5 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Realmwright server",
		Long: `Start the HTTP server. Pending database migrations are applied
on startup before the server begins accepting requests.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("http-addr", config.DefaultHTTPAddr, "HTTP listen address")
	cmd.Flags().String("metrics-addr", config.DefaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "log format (json or text)")
	cmd.Flags().Bool("cookie-secure", false, "set the Secure attribute on session cookies")

	return cmd
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetDefault("realmwright", version, cfg.LogFormat)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	slog.Info("starting server",
		"http_addr", cfg.HTTPAddr,
		"log_format", cfg.LogFormat,
	)

	pool, err := store.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	slog.Info("connected to database")

	migrator, err := store.NewMigrator(cfg.DatabaseURL)
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

	slog.Info("database schema up to date")

	// Observability server carries the metrics registry the web layer
	// reports into, so it is constructed even when not started.
	obsServer := observability.NewServer(cfg.MetricsAddr, func() bool {
		pingCtx, pingCancel := context.WithTimeout(ctx, time.Second)
		defer pingCancel()
		return pool.Ping(pingCtx) == nil
	})

	broker := view.NewBroker()
	accounts := auth.NewService(
		authpg.NewUserRepository(pool),
		authpg.NewSessionRepository(pool),
		auth.NewArgon2idHasher(),
	)
	worlds := world.NewService(world.ServiceConfig{
		Worlds:    worldpg.NewWorldRepository(pool),
		Locations: worldpg.NewLocationRepository(pool),
		NPCs:      worldpg.NewNPCRepository(pool),
		Items:     worldpg.NewItemRepository(pool),
		Gods:      worldpg.NewGodRepository(pool),
		Identity:  auth.ContextIdentity{},
		Views:     broker,
	})

	webServer := web.NewServer(web.Config{
		Worlds:       worlds,
		Accounts:     accounts,
		States:       session.NewStore(),
		Views:        broker,
		Metrics:      obsServer.Metrics(),
		CookieSecure: cfg.CookieSecure,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           webServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.MetricsAddr != "" {
		obsErrChan, err := obsServer.Start()
		if err != nil {
			return oops.Code("OBSERVABILITY_START_FAILED").Wrap(err)
		}
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
		slog.Info("observability server started", "addr", obsServer.Addr())
	}

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	cmd.Println("Server started")
	slog.Info("server ready", "http_addr", cfg.HTTPAddr)

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig)
	case err := <-errChan:
		return oops.Code("HTTP_SERVER_FAILED").Wrap(err)
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down")
	}

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("error stopping HTTP server", "error", err)
	}
	if cfg.MetricsAddr != "" {
		if err := obsServer.Stop(shutdownCtx); err != nil {
			slog.Warn("error stopping observability server", "error", err)
		}
	}

	slog.Info("shutdown complete")
	return nil
}

// monitorServerErrors watches a server's error channel and cancels the
// context on error so a failed auxiliary server takes the process down
// gracefully. It exits when an error arrives, the channel closes, or the
// context is cancelled.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string) {
	select {
	case err, ok := <-errCh:
		if !ok {
			// Channel closed, server stopped gracefully
			return
		}
		if err != nil {
			slog.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
	}
}
