// Package geocoding resolves place names to coordinates within New Zealand.
package geocoding

import (
	"context"
	"errors"
	"fmt"
)

// Geocoding errors.
var (
	// ErrProviderUnavailable indicates the geocoding provider is down.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
	// ErrEmptyQuery indicates an empty place name.
	ErrEmptyQuery = errors.New("place name is empty")
)

// NotFoundError indicates no match survived region filtering.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no NZ match found for %q", e.Query)
}

// Place is a geocoding result.
type Place struct {
	Name       string
	Lat        float64
	Lon        float64
	Admin1     string
	Country    string
	Population float64
}

// Provider defines the interface for geocoding providers. Implementations
// return only matches inside the configured country scope.
type Provider interface {
	// Search returns up to count candidate places for a query.
	Search(ctx context.Context, query string, count int) ([]Place, error)

	// Name returns the provider name for logging.
	Name() string
}
