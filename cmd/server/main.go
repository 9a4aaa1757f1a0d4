// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/api"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/breaker"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/config"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/criteria"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/database"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/enrich"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/llm"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/logging"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/middleware"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/supervisor"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/supervisor/services"
	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/tmdb"
)

const (
	perfSampleSize    = 1000
	perfSlowThreshold = 2 * time.Second
)

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("corpus", cfg.Corpus.Path).
		Str("similarity_mode", cfg.Recommend.SimilarityMode).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("catalog_configured", cfg.TMDB.APIKey != "").
		Bool("llm_configured", cfg.LLM.Enabled()).
		Msg("Starting movie recommendation server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	engine, err := initEngine(ctx, cfg, db, logging.WithComponent("recommend"))
	if err != nil {
		_ = db.Close()
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	caches, err := initCaches(&cfg.Cache, logging.WithComponent("cache"))
	if err != nil {
		_ = db.Close()
		logging.Fatal().Err(err).Msg("Failed to initialize catalog cache")
	}
	defer caches.Close()

	catalog := tmdb.NewClient(&cfg.TMDB, caches.Details, caches.Popular, logging.WithComponent("tmdb"))
	breakers := []*breaker.Breaker{catalog.Breaker()}

	deps := api.Dependencies{
		Engine:  engine,
		Store:   db,
		PerfMon: middleware.NewPerformanceMonitor(perfSampleSize, perfSlowThreshold),
	}

	if catalog.Configured() {
		pipeline, err := enrich.New(catalog, cfg.Enrich.Workers, enrich.PolicyFromConfig(&cfg.Enrich), logging.WithComponent("enrich"))
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create enrichment pipeline")
		}
		deps.Enricher = pipeline
		deps.Popular = catalog

		if cfg.LLM.Enabled() {
			generator := llm.NewClient(&cfg.LLM, logging.WithComponent("llm"))
			breakers = append(breakers, generator.Breaker())
			deps.Criteria = criteria.NewService(generator, pipeline, logging.WithComponent("criteria"))
		} else {
			logging.Info().Msg("LLM not configured, criteria recommendations disabled")
		}
	} else {
		logging.Warn().Msg("TMDB API key not configured, posters and criteria recommendations disabled")
	}
	deps.Breakers = breakers

	handler := api.NewHandler(cfg, deps)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		// Criteria requests may run for the whole API request timeout.
		WriteTimeout: cfg.API.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(cfg.Logging.Level), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	for _, svc := range caches.Services(&cfg.Cache) {
		tree.AddMaintenanceService(svc)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
