package models

// MarketQuote is basic intraday market data for a ticker symbol.
// PumpLikeMove flags an intraday change at or above the configured
// threshold; it is a collaborator heuristic, not a risk-engine signal.
type MarketQuote struct {
	Symbol            string   `json:"symbol"`
	Price             *float64 `json:"price"`
	Currency          string   `json:"currency,omitempty"`
	ChangeIntradayPct *float64 `json:"change_intraday_pct"`
	PumpLikeMove      bool     `json:"pump_like_move"`
	DataPoints        int      `json:"data_points"`
	Period            string   `json:"period"`
	Interval          string   `json:"interval"`
}
