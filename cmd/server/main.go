// Most Popular Content - Tenant Content Popularity API
// Copyright 2026 Shinsina
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shinsina/most-popular-content

// Command server runs the most-popular-content HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shinsina/most-popular-content/internal/api"
	"github.com/Shinsina/most-popular-content/internal/cache"
	"github.com/Shinsina/most-popular-content/internal/config"
	"github.com/Shinsina/most-popular-content/internal/database"
	"github.com/Shinsina/most-popular-content/internal/logging"
	"github.com/Shinsina/most-popular-content/internal/popularity"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("cache_backend", cfg.Cache.Backend).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Starting most-popular-content server")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if cfg.Database.SeedMockData {
		if err := db.SeedMockData(context.Background()); err != nil {
			return fmt.Errorf("failed to seed mock data: %w", err)
		}
		logging.Info().Msg("Seeded mock hourly usage data")
	}

	cacheStore, err := cache.New(&cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to open result cache: %w", err)
	}
	defer cacheStore.Close()

	svc := popularity.NewService(db, cacheStore, cfg.API, cfg.Cache.TTL)
	handler := api.NewHandler(svc, db, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
