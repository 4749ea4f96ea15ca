// Package routing estimates towing drive legs between two points, using a
// real directions provider with a heuristic fallback.
package routing

import (
	"context"
	"errors"
)

// Routing errors.
var (
	// ErrProviderUnavailable indicates the directions provider is down or
	// the circuit breaker is open.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	// ErrNoRouteFound indicates the provider returned no route for the pair.
	ErrNoRouteFound = errors.New("no route found between the given points")
	// ErrMissingToken indicates the provider API token is not configured.
	ErrMissingToken = errors.New("routing provider token is not configured")
	// ErrInvalidCoordinates indicates coordinates outside valid ranges.
	// This is an input error, never a fallback trigger.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Coordinate represents a geographic point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Route is a road route between two points as reported by a provider.
type Route struct {
	DistanceKm    float64
	DurationHours float64
}

// Leg is a drive-leg estimate, optionally judged against a caller-supplied
// time budget. WithinLimit is nil when no budget was given. Estimated marks
// a heuristic result produced because the directions provider failed; it
// must never be presented as a real-routing result.
type Leg struct {
	DistanceKm    float64
	DriveHours    float64
	MaxDriveHours *float64
	WithinLimit   *bool
	Estimated     bool
}

// Provider defines the interface for directions providers.
type Provider interface {
	// GetRoute retrieves road distance and duration between two points.
	GetRoute(ctx context.Context, from, to Coordinate) (*Route, error)

	// Name returns the provider name for logging.
	Name() string
}
