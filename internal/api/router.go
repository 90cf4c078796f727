package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"finguard/internal/api/handlers"
	apimiddleware "finguard/internal/api/middleware"
	"finguard/internal/config"
	"finguard/internal/infrastructure/cache"
	"finguard/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Public routes
	router.Group(func(pub chi.Router) {
		pub.Get("/health", r.handlers.Health.Check)
		pub.Get("/ready", r.handlers.Health.Ready)
		pub.Get("/api/v1/stats", r.handlers.Stats.Get)
	})

	// API v1 routes
	router.Route("/api/v1", func(api chi.Router) {
		if r.config.Auth.Enabled {
			api.Use(apimiddleware.APIKeyAuth(r.config.Auth.APIKey))
		}

		// Risk analysis
		api.Post("/analyze", r.handlers.Analyze.Analyze)
		api.Post("/analyze/batch", r.handlers.Analyze.AnalyzeBatch)

		// Pattern catalog for local matching
		api.Get("/patterns", r.handlers.Patterns.List)

		// Verified registry lookups
		api.Post("/registry/verify", r.handlers.Registry.Verify)

		// Market data
		api.Post("/market/quote", r.handlers.Market.Quote)
	})

	return router
}
