package weather

import (
	"context"

	"github.com/rs/zerolog"
)

// Maximum days a caller may request; Open-Meteo serves up to 16 but nothing
// in the product looks further out than a week.
const maxForecastDays = 7

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the daily forecast provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service fetches daily forecasts with input validation and error mapping.
// Forecasts are fetched fresh per request; nothing is cached across
// requests.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// GetDailyForecast returns a daily forecast series for a location. The days
// argument is clamped to [1, 7]. A provider failure or an empty series maps
// to an upstream error, never to a zero-filled result.
func (s *Service) GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*DailySeries, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	if days < 1 {
		days = 1
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	series, err := s.provider.GetDailyForecast(ctx, lat, lon, days)
	if err != nil {
		s.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Int("days", days).
			Str("provider", s.provider.Name()).
			Msg("failed to fetch daily forecast")
		return nil, ErrProviderUnavailable
	}

	if len(series.Days) == 0 {
		s.logger.Error().
			Float64("lat", lat).
			Float64("lon", lon).
			Str("provider", s.provider.Name()).
			Msg("provider returned no usable daily entries")
		return nil, ErrNoDailyData
	}

	return series, nil
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// validateCoordinates checks if coordinates are within valid ranges.
func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
