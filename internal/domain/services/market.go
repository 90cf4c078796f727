package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"finguard/internal/config"
	"finguard/internal/domain/models"
	"finguard/internal/infrastructure/cache"
	"finguard/pkg/logger"
)

// MarketDataService fetches intraday quotes from a chart-style quote API
// and flags pump-like moves. It sits outside the risk-scoring engine: the
// pump flag is a collaborator heuristic, not a scoring signal.
type MarketDataService struct {
	cfg        config.MarketConfig
	httpClient *http.Client
	cache      *cache.RedisCache
	logger     *logger.Logger
}

// NewMarketDataService creates the service. A nil cache disables quote
// caching.
func NewMarketDataService(cfg config.MarketConfig, c *cache.RedisCache, log *logger.Logger) *MarketDataService {
	return &MarketDataService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache:  c,
		logger: log.WithComponent("market-data"),
	}
}

// chartResponse is the subset of the quote API's chart payload we read.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Quote returns basic market data for a symbol. Results are cached for
// the configured TTL.
func (s *MarketDataService) Quote(ctx context.Context, symbol, period, interval string) (*models.MarketQuote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("missing symbol")
	}
	if period == "" {
		period = "1d"
	}
	if interval == "" {
		interval = "1m"
	}

	cacheKey := fmt.Sprintf("quote:%s:%s:%s", symbol, period, interval)
	if s.cache != nil {
		var cached models.MarketQuote
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	quote, err := s.fetch(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, quote, s.cfg.CacheTTL); err != nil {
			s.logger.Debug().Err(err).Str("symbol", symbol).Msg("failed to cache quote")
		}
	}
	return quote, nil
}

func (s *MarketDataService) fetch(ctx context.Context, symbol, period, interval string) (*models.MarketQuote, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		strings.TrimRight(s.cfg.APIURL, "/"), url.PathEscape(symbol),
		url.QueryEscape(period), url.QueryEscape(interval))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("unknown symbol %q", symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("quote API error: %s", payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("no data for symbol %q", symbol)
	}

	result := payload.Chart.Result[0]
	quote := &models.MarketQuote{
		Symbol:   symbol,
		Currency: result.Meta.Currency,
		Period:   period,
		Interval: interval,
	}
	if result.Meta.RegularMarketPrice != 0 {
		price := result.Meta.RegularMarketPrice
		quote.Price = &price
	}

	if len(result.Indicators.Quote) > 0 {
		opens := result.Indicators.Quote[0].Open
		closes := result.Indicators.Quote[0].Close
		quote.DataPoints = len(closes)

		openPrice := firstValue(opens)
		lastClose := lastValue(closes)
		if openPrice != nil && lastClose != nil && *openPrice > 0 {
			change := round2((*lastClose - *openPrice) / *openPrice * 100)
			quote.ChangeIntradayPct = &change
			quote.PumpLikeMove = change >= s.cfg.PumpThreshold
		}
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Bool("pump_like", quote.PumpLikeMove).
		Msg("quote fetched")
	return quote, nil
}

func firstValue(values []*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func lastValue(values []*float64) *float64 {
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != nil {
			return values[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*100+0.5)) / 100
	}
	return float64(int64(v*100-0.5)) / 100
}
