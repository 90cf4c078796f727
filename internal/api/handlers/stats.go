package handlers

import (
	"encoding/json"
	"net/http"

	"finguard/internal/domain/services"
	"finguard/pkg/logger"
)

// StatsHandler exposes running analysis statistics
type StatsHandler struct {
	analyzer *services.Analyzer
	logger   *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(analyzer *services.Analyzer, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("stats-handler"),
	}
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats := h.analyzer.Stats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
