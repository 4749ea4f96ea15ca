package geocoding

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// placeAliases maps common shorthand for tricky NZ spots to the name the
// geocoder actually knows. Keys are normalised lowercase.
var placeAliases = map[string]string{
	"mt cook":           "Mount Cook Village",
	"mount cook":        "Mount Cook Village",
	"aoraki":            "Mount Cook Village",
	"aoraki mt cook":    "Mount Cook Village",
	"aoraki mount cook": "Mount Cook Village",
	"mt cook village":   "Mount Cook Village",
	"mount cook village": "Mount Cook Village",
}

// ServiceConfig holds configuration for the geocoding service.
type ServiceConfig struct {
	// Provider is the geocoding provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service resolves free-text place names to a single best-guess location.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new geocoding service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// ResolveOne geocodes a place name to its single best match. When the bare
// query returns nothing, it retries once with an explicit ", NZ" suffix.
// The best match is the most populous candidate.
func (s *Service) ResolveOne(ctx context.Context, place string) (*Place, error) {
	raw := strings.TrimSpace(place)
	if raw == "" {
		return nil, ErrEmptyQuery
	}

	query := normaliseQuery(raw)

	matches, err := s.provider.Search(ctx, query, 10)
	if err != nil {
		s.logger.Error().Err(err).
			Str("query", query).
			Str("provider", s.provider.Name()).
			Msg("geocoding search failed")
		return nil, ErrProviderUnavailable
	}

	if len(matches) == 0 && !strings.Contains(query, ",") {
		matches, err = s.provider.Search(ctx, query+", NZ", 10)
		if err != nil {
			s.logger.Error().Err(err).
				Str("query", query).
				Str("provider", s.provider.Name()).
				Msg("geocoding retry failed")
			return nil, ErrProviderUnavailable
		}
	}

	if len(matches) == 0 {
		return nil, &NotFoundError{Query: raw}
	}

	best := pickBest(matches)
	return &best, nil
}

// normaliseQuery trims the query and applies the alias table.
func normaliseQuery(q string) string {
	key := strings.ToLower(q)
	key = strings.ReplaceAll(key, ".", "")
	key = strings.ReplaceAll(key, "’", "'")
	if alias, ok := placeAliases[key]; ok {
		return alias
	}
	return q
}

// pickBest prefers the most populous match: "Hamilton" should mean the
// city, not a rural locality that happens to share the name.
func pickBest(matches []Place) Place {
	sorted := make([]Place, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Population > sorted[j].Population
	})
	return sorted[0]
}
