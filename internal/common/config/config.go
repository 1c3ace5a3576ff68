// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Population PopulationConfig `mapstructure:"population"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Survey     SurveyConfig     `mapstructure:"survey"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// PopulationConfig points at the persona snapshot on disk.
type PopulationConfig struct {
	DataFile string `mapstructure:"data_file"`
}

// EngineConfig holds settings for the reply-generation engine.
type EngineConfig struct {
	APIKey       string  `mapstructure:"api_key"`
	BaseURL      string  `mapstructure:"base_url"`
	DefaultModel string  `mapstructure:"default_model"`
	Timeout      int     `mapstructure:"timeout"` // milliseconds, per call
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`
}

// SurveyConfig bounds the per-request fan-out.
type SurveyConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// RateLimitConfig selects the limiter backend and its window.
type RateLimitConfig struct {
	Backend       string `mapstructure:"backend"` // "memory" or "redis"
	MaxRequests   int    `mapstructure:"max_requests"`
	WindowSeconds int    `mapstructure:"window_seconds"`
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.Population.DataFile == "" {
		return fmt.Errorf("population.data_file is required")
	}
	if cfg.RateLimit.Backend != "memory" && cfg.RateLimit.Backend != "redis" {
		return fmt.Errorf("rate_limit.backend must be \"memory\" or \"redis\", got %q", cfg.RateLimit.Backend)
	}
	if cfg.RateLimit.Backend == "redis" && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when rate_limit.backend is \"redis\"")
	}
	return nil
}
