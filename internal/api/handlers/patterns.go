package handlers

import (
	"encoding/json"
	"net/http"

	"finguard/internal/domain/models"
	"finguard/internal/domain/services"
	"finguard/pkg/logger"
)

// PatternsHandler exposes the pattern catalog so clients can run local
// matching against the same rule set.
type PatternsHandler struct {
	catalog *services.PatternCatalog
	logger  *logger.Logger
}

// NewPatternsHandler creates a new patterns handler
func NewPatternsHandler(catalog *services.PatternCatalog, log *logger.Logger) *PatternsHandler {
	return &PatternsHandler{
		catalog: catalog,
		logger:  log.WithComponent("patterns-handler"),
	}
}

type patternCategory struct {
	Category models.ScamCategory `json:"category"`
	Weight   int                 `json:"weight"`
	Patterns []string            `json:"patterns"`
}

// List handles GET /api/v1/patterns
func (h *PatternsHandler) List(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories()
	out := struct {
		Version    string            `json:"version"`
		Categories []patternCategory `json:"categories"`
	}{
		Version: "1.0.0",
	}

	for _, cat := range categories {
		rules := h.catalog.RulesFor(cat)
		entry := patternCategory{Category: cat}
		for _, rule := range rules {
			entry.Weight = rule.Weight
			entry.Patterns = append(entry.Patterns, rule.Matcher.Source())
		}
		out.Categories = append(out.Categories, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
