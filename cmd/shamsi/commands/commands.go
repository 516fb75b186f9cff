package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskmaster/shamsi/internal/application/services"
	"github.com/taskmaster/shamsi/internal/infrastructure/cache"
	"github.com/taskmaster/shamsi/internal/infrastructure/config"
	"github.com/taskmaster/shamsi/internal/infrastructure/logger"
	"github.com/taskmaster/shamsi/internal/infrastructure/metrics"
	"github.com/taskmaster/shamsi/internal/infrastructure/server"
)

// Build information, set with -ldflags "-X".
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
	GitCommit = "development"
)

const shutdownTimeout = 30 * time.Second

// loadConfig is replaced in tests
var loadConfig = config.Load

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Shamsi API server",
		Long:  "Start the HTTP API with health checks, metrics and the optional Redis render cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Shamsi version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shamsi v%s\n", Version)
			fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Close() }()

	var renderCache cache.RenderCache = cache.NopCache{}
	if cfg.Cache.Enabled {
		client, err := cache.NewClient(ctx, cfg.Cache)
		if err != nil {
			appLogger.Warnw("Render cache unavailable, continuing without it", "error", err)
		} else {
			defer func() { _ = client.Close() }()
			renderCache = cache.NewRedisCache(client, cfg.Cache.TTL, cfg.Cache.KeyPrefix)
		}
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	calendarService, err := services.NewCalendarService(cfg.Calendar, renderCache, m, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize calendar service: %w", err)
	}

	srv, err := server.New(cfg, calendarService, renderCache, m, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	appLogger.Infow("Starting Shamsi API server",
		"address", cfg.Server.GetAddr(),
		"environment", cfg.App.Environment,
		"default_zone", cfg.Calendar.DefaultZone,
		"cache", cfg.Cache.Enabled,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(cfg.Server.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	appLogger.Info("Server stopped")
	return nil
}
