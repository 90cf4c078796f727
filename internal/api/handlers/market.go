package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"finguard/internal/domain/services"
	"finguard/pkg/logger"
)

// MarketHandler handles market-data endpoints
type MarketHandler struct {
	market *services.MarketDataService
	logger *logger.Logger
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(market *services.MarketDataService, log *logger.Logger) *MarketHandler {
	return &MarketHandler{
		market: market,
		logger: log.WithComponent("market-handler"),
	}
}

// QuoteRequest is the request body for a market quote
type QuoteRequest struct {
	Symbol   string `json:"symbol"`
	Period   string `json:"period,omitempty"`
	Interval string `json:"interval,omitempty"`
}

// Quote handles POST /api/v1/market/quote
func (h *MarketHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.market == nil {
		http.Error(w, "Market data not enabled", http.StatusServiceUnavailable)
		return
	}

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Symbol) == "" {
		http.Error(w, "Symbol is required", http.StatusBadRequest)
		return
	}

	quote, err := h.market.Quote(r.Context(), req.Symbol, req.Period, req.Interval)
	if err != nil {
		h.logger.Warn().Err(err).Str("symbol", req.Symbol).Msg("quote lookup failed")
		http.Error(w, "Quote lookup failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}
