// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-deals/flight-deal-radar/internal/usecase"
)

var iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Amadeus AmadeusConfig
	Search  SearchConfig
	Filter  FilterConfig
	Ranking RankingConfig
	Report  ReportConfig
	History HistoryConfig
	Notify  NotifyConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// AmadeusConfig holds the flight offer provider credentials and tuning.
type AmadeusConfig struct {
	APIKey    string        `env:"AMADEUS_API_KEY"`
	APISecret string        `env:"AMADEUS_API_SECRET"`
	BaseURL   string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	Currency  string        `env:"AMADEUS_CURRENCY" envDefault:"CAD"`
	MaxOffers int           `env:"AMADEUS_MAX_OFFERS" envDefault:"50"`
	Timeout   time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds the default route and passenger mix for scheduled runs.
type SearchConfig struct {
	Origin      string `env:"SEARCH_ORIGIN" envDefault:"YYZ"`
	Destination string `env:"SEARCH_DESTINATION" envDefault:"MAA"`
	Days        int    `env:"SEARCH_DAYS" envDefault:"5"`
	Adults      int    `env:"SEARCH_ADULTS" envDefault:"2"`
	Children    int    `env:"SEARCH_CHILDREN" envDefault:"2"`
}

// FilterConfig holds the record filtering policy.
type FilterConfig struct {
	ExcludedCarriers []string `env:"FILTER_EXCLUDED_CARRIERS" envDefault:"CX,AI"`
	MaxLayoverHours  float64  `env:"FILTER_MAX_LAYOVER_HOURS" envDefault:"6"`
}

// RankingConfig holds the composite score weights and list size.
type RankingConfig struct {
	PriceDivisor    float64 `env:"RANKING_PRICE_DIVISOR" envDefault:"1000"`
	DurationDivisor float64 `env:"RANKING_DURATION_DIVISOR" envDefault:"1000"`
	LayoverDivisor  float64 `env:"RANKING_LAYOVER_DIVISOR" envDefault:"10"`
	TopN            int     `env:"RANKING_TOP_N" envDefault:"3"`
}

// ReportConfig holds the report assembly policy.
type ReportConfig struct {
	TargetCarrier string `env:"REPORT_TARGET_CARRIER" envDefault:"Etihad"`
	PerDayCap     int    `env:"REPORT_PER_DAY_CAP" envDefault:"10"`
}

// HistoryConfig holds the price history persistence settings.
type HistoryConfig struct {
	File string `env:"HISTORY_FILE" envDefault:"price_history.json"`
}

// NotifyConfig holds the alert delivery settings.
// An empty webhook URL disables Slack delivery; alerts are logged instead.
type NotifyConfig struct {
	SlackWebhookURL string        `env:"SLACK_WEBHOOK_URL"`
	Timeout         time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if !iataCodePattern.MatchString(cfg.Search.Origin) {
		return fmt.Errorf("SEARCH_ORIGIN must be a 3-letter IATA code, got %q", cfg.Search.Origin)
	}
	if !iataCodePattern.MatchString(cfg.Search.Destination) {
		return fmt.Errorf("SEARCH_DESTINATION must be a 3-letter IATA code, got %q", cfg.Search.Destination)
	}
	if cfg.Search.Days < 1 {
		return fmt.Errorf("SEARCH_DAYS must be at least 1, got %d", cfg.Search.Days)
	}
	if cfg.Search.Adults < 1 {
		return fmt.Errorf("SEARCH_ADULTS must be at least 1, got %d", cfg.Search.Adults)
	}
	if cfg.Search.Children < 0 {
		return fmt.Errorf("SEARCH_CHILDREN must not be negative, got %d", cfg.Search.Children)
	}

	if cfg.Ranking.PriceDivisor <= 0 || cfg.Ranking.DurationDivisor <= 0 || cfg.Ranking.LayoverDivisor <= 0 {
		return fmt.Errorf("ranking divisors must be positive")
	}
	if cfg.Ranking.TopN < 1 {
		return fmt.Errorf("RANKING_TOP_N must be at least 1, got %d", cfg.Ranking.TopN)
	}

	if cfg.Report.PerDayCap < 1 {
		return fmt.Errorf("REPORT_PER_DAY_CAP must be at least 1, got %d", cfg.Report.PerDayCap)
	}
	if cfg.Report.TargetCarrier == "" {
		return fmt.Errorf("REPORT_TARGET_CARRIER must not be empty")
	}

	if cfg.History.File == "" {
		return fmt.Errorf("HISTORY_FILE must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// PipelineConfig converts the loaded settings into the pipeline's policy set.
func (c *Config) PipelineConfig() usecase.PipelineConfig {
	return usecase.PipelineConfig{
		Origin:      c.Search.Origin,
		Destination: c.Search.Destination,
		Days:        c.Search.Days,
		Adults:      c.Search.Adults,
		Children:    c.Search.Children,
		Filter: usecase.FilterConfig{
			ExcludedCarriers: c.Filter.ExcludedCarriers,
			MaxLayoverHours:  c.Filter.MaxLayoverHours,
		},
		Ranking: usecase.RankingConfig{
			PriceDivisor:    c.Ranking.PriceDivisor,
			DurationDivisor: c.Ranking.DurationDivisor,
			LayoverDivisor:  c.Ranking.LayoverDivisor,
			TopN:            c.Ranking.TopN,
		},
		Report: usecase.ReportConfig{
			TargetCarrier: c.Report.TargetCarrier,
			PerDayCap:     c.Report.PerDayCap,
		},
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
