// Package config provides configuration management for the play-by-play
// ingestion pipeline.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	StatsAPI StatsAPIConfig `mapstructure:"stats_api" validate:"required"`
	Sync     SyncConfig     `mapstructure:"sync" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host" validate:"required"`
	Port           int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name           string `mapstructure:"name" validate:"required"`
	User           string `mapstructure:"user" validate:"required"`
	Password       string `mapstructure:"password" validate:"required"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"required,gt=0"`
}

// StatsAPIConfig represents MLB Stats API client configuration
type StatsAPIConfig struct {
	BaseURL              string  `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds       int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries           int     `mapstructure:"max_retries" validate:"gte=0"`
	RequestsPerSecond    float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
	MetadataCacheMinutes int     `mapstructure:"metadata_cache_minutes" validate:"required,gt=0"`
}

// SyncConfig represents ingestion stage configuration
type SyncConfig struct {
	FetchConcurrency int    `mapstructure:"fetch_concurrency" validate:"required,gt=0,lte=64"`
	BatchSize        int    `mapstructure:"batch_size" validate:"required,gt=0"`
	Schedule         string `mapstructure:"schedule" validate:"required"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// Timeout returns the client timeout as a duration
func (c *StatsAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MetadataCacheTTL returns the metadata cache TTL as a duration
func (c *StatsAPIConfig) MetadataCacheTTL() time.Duration {
	return time.Duration(c.MetadataCacheMinutes) * time.Minute
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
