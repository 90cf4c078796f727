package handlers

import (
	"finguard/internal/domain/services"
	"finguard/internal/infrastructure/cache"
	"finguard/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health   *HealthHandler
	Analyze  *AnalyzeHandler
	Registry *RegistryHandler
	Market   *MarketHandler
	Patterns *PatternsHandler
	Stats    *StatsHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Analyzer   *services.Analyzer
	Registry   *services.RegistryService
	Market     *services.MarketDataService
	Catalog    *services.PatternCatalog
	Cache      *cache.RedisCache
	Logger     *logger.Logger
	AppVersion string
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Cache, deps.AppVersion, deps.Logger),
		Analyze:  NewAnalyzeHandler(deps.Analyzer, deps.Logger),
		Registry: NewRegistryHandler(deps.Registry, deps.Logger),
		Market:   NewMarketHandler(deps.Market, deps.Logger),
		Patterns: NewPatternsHandler(deps.Catalog, deps.Logger),
		Stats:    NewStatsHandler(deps.Analyzer, deps.Logger),
	}
}
