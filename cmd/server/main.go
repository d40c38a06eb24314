// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/tomtom215/scholarwise/internal/api"
	"github.com/tomtom215/scholarwise/internal/config"
	"github.com/tomtom215/scholarwise/internal/logging"
	"github.com/tomtom215/scholarwise/internal/metrics"
	"github.com/tomtom215/scholarwise/internal/supervisor"
	"github.com/tomtom215/scholarwise/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	logger.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("config_file", cfg.SourcePath).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Starting Scholarwise")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	warnAboutSecurity(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := initStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing store")
		}
	}()

	provider := newGuardedProvider(db, cfg, logger)

	engine, err := initRecommend(cfg, logger)
	if err != nil {
		return err
	}

	handler, err := api.NewHandler(api.HandlerDeps{
		Engine:         engine,
		Provider:       provider,
		Recorder:       db,
		Store:          db,
		Breaker:        provider,
		Version:        version,
		RequestTimeout: cfg.Server.Timeout,
	})
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}

	chiMiddleware := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewMaintenanceService(db, services.MaintenanceConfig{}, logger))
	if cfg.SourcePath != "" {
		tree.AddControlService(newConfigWatchService(cfg.SourcePath, engine, logger))
	} else {
		logger.Info().Msg("No config file loaded, hot reload disabled")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	logger.Info().Str("addr", server.Addr).Msg("HTTP server starting")

	err = tree.Serve(ctx)

	if report, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(report) > 0 {
		for _, svc := range report {
			logger.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}

func warnAboutSecurity(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production. Set CORS_ORIGINS to the frontend origins.")
	}
}
