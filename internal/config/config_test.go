package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finguard/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "finguard", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Scoring.BlacklistBonus)
	assert.Equal(t, 5, cfg.Scoring.SentimentBonus)
	assert.Equal(t, 0.85, cfg.Scoring.Confidence)
	assert.Equal(t, 80, cfg.Scoring.Thresholds.High)
	assert.Equal(t, 50, cfg.Scoring.Thresholds.Medium)
	assert.Equal(t, 30, cfg.Scoring.Thresholds.LowMedium)
	assert.Equal(t, 8, cfg.Scoring.Credibility.Baseline)
	assert.Equal(t, 2, cfg.Scoring.Credibility.BlacklistedScore)
	assert.Equal(t, 1000, cfg.Scoring.Credibility.LowFollowerCutoff)
	assert.Equal(t, 6, cfg.Scoring.Credibility.VerifiedCutoff)
	assert.Equal(t, 512, cfg.Sentiment.MaxInputLen)
	assert.Equal(t, 0.9, cfg.Sentiment.MinConfidence)
	assert.Equal(t, 20.0, cfg.Market.PumpThreshold)
	assert.Equal(t, "data/blacklist.json", cfg.Data.BlacklistFile)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  name: finguard
  environment: production
server:
  host: 127.0.0.1
  http_port: 9090
scoring:
  blacklist_bonus: 40
  thresholds:
    high: 90
redis:
  enabled: true
  host: redis.internal
  port: 6380
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr())

	// Explicit values win, untouched keys keep the defaults.
	assert.Equal(t, 40, cfg.Scoring.BlacklistBonus)
	assert.Equal(t, 90, cfg.Scoring.Thresholds.High)
	assert.Equal(t, 50, cfg.Scoring.Thresholds.Medium)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  http_port: 9090
`)

	t.Setenv("FINGUARD_SERVER_HTTP_PORT", "7070")
	t.Setenv("FINGUARD_AUTH_API_KEY", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Auth.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestRedisAddr(t *testing.T) {
	cfg := config.RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.Addr())
}
