package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finguard/internal/api"
	"finguard/internal/api/handlers"
	"finguard/internal/config"
	"finguard/internal/domain/models"
	"finguard/internal/domain/services"
	"finguard/internal/refdata"
	"finguard/pkg/logger"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Redis.Enabled = false
	cfg.RateLimit.Enabled = false
	cfg.Auth.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	list := refdata.NewBlacklist([]models.BlacklistEntry{{Name: "PumpKing"}})
	registry := refdata.NewVerifiedRegistry([]string{"Vanguard Group"})
	catalog := services.NewPatternCatalog(log)

	analyzer := services.NewAnalyzer(services.AnalyzerDeps{
		Patterns:    services.NewScamPatternDetector(catalog, log),
		Blacklist:   services.NewBlacklistDetector(list, cfg.Scoring.BlacklistBonus, log),
		Sentiment:   services.NewSentimentSkewDetector(nil, cfg.Scoring.SentimentBonus, cfg.Sentiment.MaxInputLen, cfg.Sentiment.MinConfidence, log),
		Credibility: services.NewCredibilityDetector(list, cfg.Scoring.Credibility, log),
		Aggregator:  services.NewRiskAggregator(cfg.Scoring.Thresholds, log),
		Explainer:   services.NewExplanationBuilder(),
		Deepfake:    services.NewDeepfakeStub(),
		Confidence:  cfg.Scoring.Confidence,
	}, log)

	h := handlers.NewHandlers(handlers.Dependencies{
		Analyzer:   analyzer,
		Registry:   services.NewRegistryService(registry, log),
		Catalog:    catalog,
		Logger:     log,
		AppVersion: "test",
	})

	srv := httptest.NewServer(api.NewRouter(*cfg, h, nil, log).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestRouter_Analyze(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyze",
		`{"text": "Buy now! Guaranteed returns, 100% profit, act fast before it explodes!", "author": "PumpKing"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, 100, result.ScamRisk)
	assert.Equal(t, models.SeverityHigh, result.Severity)
	assert.Len(t, result.Warnings, 6)
	assert.Equal(t, 2, result.Credibility.Score)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, 15, result.Deepfake.Risk)
}

func TestRouter_AnalyzeNestedContent(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyze",
		`{"content": {"text": "guaranteed returns", "title": "PumpKing"}}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 50, result.ScamRisk)
}

func TestRouter_AnalyzeInvalidBody(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyze", `{"text": `, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_AnalyzeBatch(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyze/batch",
		`{"items": [{"text": "buy now"}, {"text": ""}]}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Results []models.AnalysisResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, 15, body.Results[0].ScamRisk)
	assert.Zero(t, body.Results[1].ScamRisk)
}

func TestRouter_AnalyzeBatchEmpty(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/analyze/batch", `{"items": []}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_RegistryVerify(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/registry/verify", `{"entity": "Vanguard Group"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var check models.RegistryCheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&check))
	assert.True(t, check.Registered)

	resp2 := postJSON(t, srv.URL+"/api/v1/registry/verify", `{"entity": "Totally Legit Capital"}`, nil)
	defer resp2.Body.Close()
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&check))
	assert.False(t, check.Registered)
}

func TestRouter_PatternsExport(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/patterns")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Version    string `json:"version"`
		Categories []struct {
			Category string   `json:"category"`
			Weight   int      `json:"weight"`
			Patterns []string `json:"patterns"`
		} `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Categories, 4)
	assert.Equal(t, "pump_dump", body.Categories[0].Category)
	assert.Equal(t, 15, body.Categories[0].Weight)
	assert.NotEmpty(t, body.Categories[0].Patterns)
}

func TestRouter_MarketDisabled(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/market/quote", `{"symbol": "AAPL"}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRouter_HealthAndStats(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	postJSON(t, srv.URL+"/api/v1/analyze", `{"text": "buy now"}`, nil).Body.Close()

	resp2, err := http.Get(srv.URL + "/api/v1/stats")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var stats services.AnalyzerStats
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&stats))
	assert.Equal(t, int64(1), stats.TotalAnalyzed)
}

func TestRouter_APIKeyAuth(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Auth.Enabled = true
		cfg.Auth.APIKey = "secret-key"
	})

	resp := postJSON(t, srv.URL+"/api/v1/analyze", `{"text": "buy now"}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := postJSON(t, srv.URL+"/api/v1/analyze", `{"text": "buy now"}`,
		map[string]string{"Authorization": "Bearer secret-key"})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	// Health stays public.
	resp3, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)
}
