package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Sentiment SentimentConfig `mapstructure:"sentiment"`
	Market    MarketConfig    `mapstructure:"market"`
	Data      DataConfig      `mapstructure:"data"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

type AuthConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
}

// ScoringConfig controls the risk engine. Zero values fall back to the
// built-in defaults so a config file only needs to override what it changes.
type ScoringConfig struct {
	BlacklistBonus int               `mapstructure:"blacklist_bonus"`
	SentimentBonus int               `mapstructure:"sentiment_bonus"`
	Confidence     float64           `mapstructure:"confidence"`
	Thresholds     ThresholdsConfig  `mapstructure:"thresholds"`
	Credibility    CredibilityConfig `mapstructure:"credibility"`
}

// ThresholdsConfig is the severity ladder, evaluated top-down.
type ThresholdsConfig struct {
	High      int `mapstructure:"high"`
	Medium    int `mapstructure:"medium"`
	LowMedium int `mapstructure:"low_medium"`
}

type CredibilityConfig struct {
	Baseline          int `mapstructure:"baseline"`
	BlacklistedScore  int `mapstructure:"blacklisted_score"`
	LowFollowerCutoff int `mapstructure:"low_follower_cutoff"`
	VerifiedCutoff    int `mapstructure:"verified_cutoff"`
}

type SentimentConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	APIURL        string        `mapstructure:"api_url"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxInputLen   int           `mapstructure:"max_input_len"`
	MinConfidence float64       `mapstructure:"min_confidence"`
}

type MarketConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	APIURL        string        `mapstructure:"api_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	PumpThreshold float64       `mapstructure:"pump_threshold"`
}

type DataConfig struct {
	BlacklistFile string `mapstructure:"blacklist_file"`
	RegistryFile  string `mapstructure:"registry_file"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/finguard")
	}

	// Environment variables
	v.SetEnvPrefix("FINGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("app.environment", "FINGUARD_APP_ENVIRONMENT")
	v.BindEnv("server.host", "FINGUARD_SERVER_HOST")
	v.BindEnv("server.http_port", "FINGUARD_SERVER_HTTP_PORT")
	v.BindEnv("redis.enabled", "FINGUARD_REDIS_ENABLED")
	v.BindEnv("redis.host", "FINGUARD_REDIS_HOST")
	v.BindEnv("redis.port", "FINGUARD_REDIS_PORT")
	v.BindEnv("redis.password", "FINGUARD_REDIS_PASSWORD")
	v.BindEnv("auth.api_key", "FINGUARD_AUTH_API_KEY")
	v.BindEnv("sentiment.enabled", "FINGUARD_SENTIMENT_ENABLED")
	v.BindEnv("sentiment.api_url", "FINGUARD_SENTIMENT_API_URL")
	v.BindEnv("sentiment.api_key", "FINGUARD_SENTIMENT_API_KEY")
	v.BindEnv("market.api_url", "FINGUARD_MARKET_API_URL")
	v.BindEnv("data.blacklist_file", "FINGUARD_DATA_BLACKLIST_FILE")
	v.BindEnv("data.registry_file", "FINGUARD_DATA_REGISTRY_FILE")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		App: AppConfig{
			Name:        "finguard",
			Environment: "development",
			Version:     "1.0.0",
		},
		Server: ServerConfig{
			Host:     "0.0.0.0",
			HTTPPort: 8080,
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Scoring.BlacklistBonus == 0 {
		c.Scoring.BlacklistBonus = 30
	}
	if c.Scoring.SentimentBonus == 0 {
		c.Scoring.SentimentBonus = 5
	}
	if c.Scoring.Confidence == 0 {
		c.Scoring.Confidence = 0.85
	}
	if c.Scoring.Thresholds.High == 0 {
		c.Scoring.Thresholds.High = 80
	}
	if c.Scoring.Thresholds.Medium == 0 {
		c.Scoring.Thresholds.Medium = 50
	}
	if c.Scoring.Thresholds.LowMedium == 0 {
		c.Scoring.Thresholds.LowMedium = 30
	}
	if c.Scoring.Credibility.Baseline == 0 {
		c.Scoring.Credibility.Baseline = 8
	}
	if c.Scoring.Credibility.BlacklistedScore == 0 {
		c.Scoring.Credibility.BlacklistedScore = 2
	}
	if c.Scoring.Credibility.LowFollowerCutoff == 0 {
		c.Scoring.Credibility.LowFollowerCutoff = 1000
	}
	if c.Scoring.Credibility.VerifiedCutoff == 0 {
		c.Scoring.Credibility.VerifiedCutoff = 6
	}
	if c.Sentiment.Timeout == 0 {
		c.Sentiment.Timeout = 5 * time.Second
	}
	if c.Sentiment.MaxInputLen == 0 {
		c.Sentiment.MaxInputLen = 512
	}
	if c.Sentiment.MinConfidence == 0 {
		c.Sentiment.MinConfidence = 0.9
	}
	if c.Market.Timeout == 0 {
		c.Market.Timeout = 10 * time.Second
	}
	if c.Market.CacheTTL == 0 {
		c.Market.CacheTTL = time.Minute
	}
	if c.Market.PumpThreshold == 0 {
		c.Market.PumpThreshold = 20.0
	}
	if c.Data.BlacklistFile == "" {
		c.Data.BlacklistFile = "data/blacklist.json"
	}
	if c.Data.RegistryFile == "" {
		c.Data.RegistryFile = "data/verified.json"
	}
}
