package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finguard/internal/api"
	"finguard/internal/api/handlers"
	"finguard/internal/config"
	"finguard/internal/domain/services"
	"finguard/internal/domain/services/ai"
	"finguard/internal/infrastructure/cache"
	"finguard/internal/refdata"
	"finguard/pkg/logger"
)

func main() {
	// Load configuration; a missing config file falls back to defaults so
	// the service can boot with env vars alone.
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config file not loaded, using defaults: %v\n", err)
		cfg = config.Default()
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting finguard")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is optional: without it, rate limiting and quote caching are
	// disabled but analysis works unchanged.
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			redisCache = nil
		}
	}
	defer func() {
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Static reference data, loaded once; missing files degrade to empty sets.
	blacklist := refdata.LoadBlacklist(cfg.Data.BlacklistFile, log)
	registry := refdata.LoadVerifiedRegistry(cfg.Data.RegistryFile, log)

	// Sentiment classifier collaborator, constructed once and injected.
	var classifier ai.Classifier
	if cfg.Sentiment.Enabled {
		classifier = ai.NewInferenceClassifier(ai.InferenceConfig{
			APIURL:  cfg.Sentiment.APIURL,
			APIKey:  cfg.Sentiment.APIKey,
			Timeout: cfg.Sentiment.Timeout,
		}, log)
		log.Info().Str("api_url", cfg.Sentiment.APIURL).Msg("sentiment classifier initialized")
	} else {
		log.Info().Msg("sentiment signal disabled")
	}

	// Risk engine
	catalog := services.NewPatternCatalog(log)
	analyzer := services.NewAnalyzer(services.AnalyzerDeps{
		Patterns:    services.NewScamPatternDetector(catalog, log),
		Blacklist:   services.NewBlacklistDetector(blacklist, cfg.Scoring.BlacklistBonus, log),
		Sentiment:   services.NewSentimentSkewDetector(classifier, cfg.Scoring.SentimentBonus, cfg.Sentiment.MaxInputLen, cfg.Sentiment.MinConfidence, log),
		Credibility: services.NewCredibilityDetector(blacklist, cfg.Scoring.Credibility, log),
		Aggregator:  services.NewRiskAggregator(cfg.Scoring.Thresholds, log),
		Explainer:   services.NewExplanationBuilder(),
		Deepfake:    services.NewDeepfakeStub(),
		Confidence:  cfg.Scoring.Confidence,
	}, log)
	log.Info().
		Int("rules", len(catalog.Rules())).
		Int("blacklist_entries", blacklist.Len()).
		Int("registry_entries", registry.Len()).
		Msg("risk engine initialized")

	registryService := services.NewRegistryService(registry, log)

	var marketService *services.MarketDataService
	if cfg.Market.Enabled {
		marketService = services.NewMarketDataService(cfg.Market, redisCache, log)
		log.Info().Str("api_url", cfg.Market.APIURL).Msg("market data service initialized")
	}

	// Initialize handlers
	h := handlers.NewHandlers(handlers.Dependencies{
		Analyzer:   analyzer,
		Registry:   registryService,
		Market:     marketService,
		Catalog:    catalog,
		Cache:      redisCache,
		Logger:     log,
		AppVersion: cfg.App.Version,
	})

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
