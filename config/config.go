package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds remote category API configuration
type CatalogConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	PageSize          int           `mapstructure:"page_size"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxRetries        int           `mapstructure:"max_retries"`
}

// Enabled reports whether the remote fallback can be used
func (c CatalogConfig) Enabled() bool {
	return c.APIKey != ""
}

// CacheConfig holds remote fallback cache configuration
type CacheConfig struct {
	Type       string        `mapstructure:"type"` // only "memory"
	TTL        time.Duration `mapstructure:"ttl"`  // 0 keeps entries forever
	MaxEntries int           `mapstructure:"max_entries"`
}

// MatchingConfig holds thresholds for local category matching
type MatchingConfig struct {
	FindThreshold        float64 `mapstructure:"find_threshold"`
	SearchThreshold      float64 `mapstructure:"search_threshold"`
	SearchLimit          int     `mapstructure:"search_limit"`
	SuggestThreshold     float64 `mapstructure:"suggest_threshold"`
	SuggestWordThreshold float64 `mapstructure:"suggest_word_threshold"`
	EnableDebugLogging   bool    `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cartwise/")

	// Environment variable settings
	v.SetEnvPrefix("CARTWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile exports variables from ./.env without overriding the environment.
// A missing file is not an error.
func loadEnvFile() error {
	err := gotenv.Load(".env")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Catalog defaults
	v.SetDefault("catalog.api_key", "")
	v.SetDefault("catalog.base_url", "https://api.bestbuy.com")
	v.SetDefault("catalog.page_size", 100)
	v.SetDefault("catalog.timeout", "15s")
	v.SetDefault("catalog.requests_per_second", 5.0)
	v.SetDefault("catalog.burst", 5)
	v.SetDefault("catalog.max_retries", 3)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.max_entries", 1000)

	// Matching defaults
	v.SetDefault("matching.find_threshold", 0.3)
	v.SetDefault("matching.search_threshold", 0.2)
	v.SetDefault("matching.search_limit", 10)
	v.SetDefault("matching.suggest_threshold", 0.4)
	v.SetDefault("matching.suggest_word_threshold", 0.5)
	v.SetDefault("matching.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	if config.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache max entries must not be negative, got: %d", config.Cache.MaxEntries)
	}

	if config.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog page size must be positive, got: %d", config.Catalog.PageSize)
	}

	if config.Catalog.Enabled() && config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required when an API key is set")
	}

	if config.Matching.SearchLimit <= 0 {
		return fmt.Errorf("matching search limit must be positive, got: %d", config.Matching.SearchLimit)
	}

	thresholds := map[string]float64{
		"find_threshold":         config.Matching.FindThreshold,
		"search_threshold":       config.Matching.SearchThreshold,
		"suggest_threshold":      config.Matching.SuggestThreshold,
		"suggest_word_threshold": config.Matching.SuggestWordThreshold,
	}
	for name, value := range thresholds {
		if value < 0 || value > 1 {
			return fmt.Errorf("matching %s must be between 0 and 1, got: %v", name, value)
		}
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
