// Package config loads the API configuration from the environment.
// A .env file is honoured when present for local development; real
// environment variables always win. Configuration is loaded once at startup
// and never mutated.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the top-level configuration for the TouringBrain API.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development" validate:"oneof=development staging production"`
	Port        string `envconfig:"APP_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Weather   WeatherConfig
	Geocoding GeocodingConfig
	Routing   RoutingConfig
	Telemetry TelemetryConfig
}

// WeatherConfig holds the forecast provider settings.
type WeatherConfig struct {
	BaseURL string        `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com/v1/forecast" validate:"url"`
	Timeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"12s"`
}

// GeocodingConfig holds the geocoding provider settings.
type GeocodingConfig struct {
	BaseURL string        `envconfig:"GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1/search" validate:"url"`
	Timeout time.Duration `envconfig:"GEOCODING_TIMEOUT" default:"10s"`
}

// RoutingConfig holds the directions provider settings. An empty token
// disables real routing; drive legs then come from the heuristic fallback.
type RoutingConfig struct {
	MapboxToken  string        `envconfig:"MAPBOX_TOKEN"`
	BaseURL      string        `envconfig:"MAPBOX_BASE_URL" default:"https://api.mapbox.com/directions/v5/mapbox/driving" validate:"url"`
	TowingFactor float64       `envconfig:"TOWING_TIME_FACTOR" default:"1.10" validate:"gt=0"`
	Timeout      time.Duration `envconfig:"ROUTING_TIMEOUT" default:"10s"`
}

// TelemetryConfig holds the OpenTelemetry exporter settings.
type TelemetryConfig struct {
	Enabled      bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // absent .env is fine

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return &cfg, nil
}
