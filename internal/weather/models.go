// Package weather provides daily forecast retrieval for the scoring core.
package weather

import (
	"context"
	"errors"
	"time"

	"github.com/touringbrain/touringbrain/internal/forecast"
)

// Weather errors.
var (
	// ErrProviderUnavailable indicates the forecast provider is down or the
	// circuit breaker is open.
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	// ErrNoDailyData indicates the provider answered but returned no usable
	// daily entries.
	ErrNoDailyData = errors.New("weather provider returned no daily data")
	// ErrInvalidCoordinates indicates coordinates outside valid ranges.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// DailySeries holds a multi-day forecast for a single location. Days are in
// chronological order; entries with unparsable dates have already been
// dropped by the provider client.
type DailySeries struct {
	Lat       float64
	Lon       float64
	Days      []forecast.Observation
	FetchedAt time.Time
}

// Provider defines the interface for daily forecast providers.
type Provider interface {
	// GetDailyForecast fetches up to days daily entries for a location.
	GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*DailySeries, error)

	// Name returns the provider name for logging.
	Name() string
}
