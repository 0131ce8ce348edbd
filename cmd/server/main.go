// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

// Command server runs the recommendation HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ciconnect/recommender/internal/api"
	"github.com/ciconnect/recommender/internal/config"
	"github.com/ciconnect/recommender/internal/logging"
	"github.com/ciconnect/recommender/internal/metrics"
	"github.com/ciconnect/recommender/internal/recommend"
	"github.com/ciconnect/recommender/internal/store"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Service failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("database", cfg.Mongo.Database).
		Msg("Starting recommendation service")

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	db, err := store.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logging.Warn().Err(err).Msg("MongoDB disconnect failed")
		}
	}()

	service := recommend.NewService(db, &cfg.Recommend)
	m := metrics.New()
	handler := api.NewHandler(service, db, m, cfg.Server.RequestTimeout)
	router := api.NewRouter(handler, api.RouterConfig{
		APIKey:            cfg.Server.APIKey,
		RateLimitRequests: cfg.Server.RateLimitRequests,
		CORSOrigins:       cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
