// Package main is the entry point for the flight deal radar service.
//
//	@title						Flight Deal Radar API
//	@version					1.0.0
//	@description				Searches a route's upcoming departure dates, scores and ranks the offers, and renders a fixed-width flight deal report with price-drop alerts.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-deals/flight-deal-radar/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-deals/flight-deal-radar/docs"

	// Application layers
	radarhttp "github.com/flight-deals/flight-deal-radar/internal/adapter/http"
	"github.com/flight-deals/flight-deal-radar/internal/adapter/http/middleware"
	"github.com/flight-deals/flight-deal-radar/internal/adapter/notify"
	"github.com/flight-deals/flight-deal-radar/internal/adapter/provider/amadeus"
	"github.com/flight-deals/flight-deal-radar/internal/config"
	"github.com/flight-deals/flight-deal-radar/internal/infrastructure/logger"
	"github.com/flight-deals/flight-deal-radar/internal/store"
	"github.com/flight-deals/flight-deal-radar/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	log := logger.New(logCfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("route", cfg.Search.Origin+"-"+cfg.Search.Destination).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the pipeline and configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log zerolog.Logger) {
	// Offer source
	client := amadeus.NewClient(amadeus.Config{
		APIKey:    cfg.Amadeus.APIKey,
		APISecret: cfg.Amadeus.APISecret,
		BaseURL:   cfg.Amadeus.BaseURL,
		Currency:  cfg.Amadeus.Currency,
		MaxOffers: cfg.Amadeus.MaxOffers,
		Timeout:   cfg.Amadeus.Timeout,
	}, log)

	// Price history persistence
	history := store.NewPriceHistory(cfg.History.File, log)

	// Alert delivery: Slack when configured, structured log otherwise
	var notifier usecase.Notifier
	if cfg.Notify.SlackWebhookURL != "" {
		notifier = notify.NewSlackNotifier(cfg.Notify.SlackWebhookURL, cfg.Notify.Timeout, log)
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	pipeline := usecase.NewPipeline(client, history, notifier, nil, cfg.PipelineConfig(), log)

	handler := radarhttp.NewReportHandler(pipeline)
	radarhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
