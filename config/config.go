package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds the Postgres connection settings
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// SearchConfig holds search pipeline configuration
type SearchConfig struct {
	DefaultLimit       int           `mapstructure:"default_limit"`
	MaxLimit           int           `mapstructure:"max_limit"`
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
	EnableDebugLogging bool          `mapstructure:"debug_logging"`
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per second per client IP
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/retrofy/")

	// Environment variable settings
	v.SetEnvPrefix("RETROFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database has no usable default; registering the key lets
	// RETROFY_DATABASE_URL flow through AutomaticEnv into Unmarshal.
	v.SetDefault("database.url", "")

	// Search defaults
	v.SetDefault("search.default_limit", 50)
	v.SetDefault("search.max_limit", 200)
	v.SetDefault("search.cache_ttl", "5m")
	v.SetDefault("search.debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 50)
	v.SetDefault("ratelimit.burst", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Database.URL == "" {
		return fmt.Errorf("database URL is required (set RETROFY_DATABASE_URL)")
	}

	if config.Search.DefaultLimit <= 0 {
		return fmt.Errorf("search default_limit must be positive, got: %d", config.Search.DefaultLimit)
	}

	if config.Search.MaxLimit < config.Search.DefaultLimit {
		return fmt.Errorf("search max_limit (%d) must be >= default_limit (%d)",
			config.Search.MaxLimit, config.Search.DefaultLimit)
	}

	return nil
}
