package handlers

import (
	"encoding/json"
	"net/http"

	"finguard/internal/domain/services"
	"finguard/pkg/logger"
)

// RegistryHandler handles verified-registry lookups
type RegistryHandler struct {
	registry *services.RegistryService
	logger   *logger.Logger
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registry *services.RegistryService, log *logger.Logger) *RegistryHandler {
	return &RegistryHandler{
		registry: registry,
		logger:   log.WithComponent("registry-handler"),
	}
}

// Verify handles POST /api/v1/registry/verify
func (h *RegistryHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Entity string `json:"entity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Entity == "" {
		http.Error(w, "Entity is required", http.StatusBadRequest)
		return
	}

	check := h.registry.Verify(req.Entity)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(check)
}
