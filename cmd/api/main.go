// Package main provides the entrypoint for the TouringBrain API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/api"
	"github.com/touringbrain/touringbrain/internal/api/middleware"
	"github.com/touringbrain/touringbrain/internal/briefing"
	"github.com/touringbrain/touringbrain/internal/caravan"
	"github.com/touringbrain/touringbrain/internal/config"
	"github.com/touringbrain/touringbrain/internal/geocoding"
	geocodingclient "github.com/touringbrain/touringbrain/internal/geocoding/openmeteo"
	"github.com/touringbrain/touringbrain/internal/provider/resilience"
	"github.com/touringbrain/touringbrain/internal/routing"
	"github.com/touringbrain/touringbrain/internal/routing/mapbox"
	"github.com/touringbrain/touringbrain/internal/telemetry"
	"github.com/touringbrain/touringbrain/internal/touring"
	"github.com/touringbrain/touringbrain/internal/weather"
	weatherclient "github.com/touringbrain/touringbrain/internal/weather/openmeteo"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "touringbrain-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, parseErr := zerolog.ParseLevel(cfg.LogLevel); parseErr == nil {
		log = log.Level(level)
	}

	log.Info().
		Str("build_time", BuildTime).
		Str("environment", cfg.Environment).
		Msg("starting TouringBrain API")

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.Telemetry.Enabled {
		log.Info().
			Str("otlp_endpoint", cfg.Telemetry.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Weather provider and service
	weatherHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:    weatherclient.ProviderName,
		Timeout: cfg.Weather.Timeout,
	})
	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: weatherclient.NewClient(weatherclient.ClientConfig{
			BaseURL:    cfg.Weather.BaseURL,
			HTTPClient: weatherHTTP,
			Logger:     log,
		}),
		Logger: log,
	})
	log.Info().Msg("weather service initialized")

	// Geocoding provider and service
	geocodingHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:    geocodingclient.ProviderName,
		Timeout: cfg.Geocoding.Timeout,
	})
	geocodingService := geocoding.NewService(geocoding.ServiceConfig{
		Provider: geocodingclient.NewClient(geocodingclient.ClientConfig{
			BaseURL:    cfg.Geocoding.BaseURL,
			HTTPClient: geocodingHTTP,
			Logger:     log,
		}),
		Logger: log,
	})
	log.Info().Msg("geocoding service initialized")

	// Routing provider and service. An empty Mapbox token is allowed; every
	// leg then falls back to the straight-line heuristic.
	if cfg.Routing.MapboxToken == "" {
		log.Warn().Msg("MAPBOX_TOKEN not set - drive legs will use the straight-line fallback")
	}
	routingHTTP := resilience.NewClient(resilience.ClientConfig{
		Name:    mapbox.ProviderName,
		Timeout: cfg.Routing.Timeout,
	})
	routingService := routing.NewService(routing.ServiceConfig{
		Provider: mapbox.NewClient(mapbox.ClientConfig{
			AccessToken:  cfg.Routing.MapboxToken,
			BaseURL:      cfg.Routing.BaseURL,
			TowingFactor: cfg.Routing.TowingFactor,
			HTTPClient:   routingHTTP,
			Logger:       log,
		}),
		Logger: log,
	})
	log.Info().Msg("routing service initialized")

	// Domain services
	briefingService := briefing.NewService(briefing.ServiceConfig{
		Weather: weatherService,
		Logger:  log,
	})
	caravanService := caravan.NewService(caravan.ServiceConfig{
		Weather: weatherService,
		Logger:  log,
	})
	touringService := touring.NewService(touring.ServiceConfig{
		Weather:  weatherService,
		Geocoder: geocodingService,
		Routes:   routingService,
		Logger:   log,
	})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		BriefingService: briefingService,
		CaravanService:  caravanService,
		TouringService:  touringService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
