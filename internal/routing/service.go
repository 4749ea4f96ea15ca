package routing

import (
	"context"
	"math"

	"github.com/rs/zerolog"
)

const (
	// minAverageSpeedKmh floors the implied average speed of any estimate.
	// Towing rigs do not average more than this on NZ roads, regardless of
	// what the directions provider thinks a car would do.
	minAverageSpeedKmh = 90.0

	// Heuristic fallback factors, applied only when the provider fails.
	fallbackRoadFactor      = 1.25
	fallbackAverageSpeedKmh = 80.0

	earthRadiusKm = 6371.0
)

// ServiceConfig holds the configuration for creating a routing Service.
type ServiceConfig struct {
	Provider Provider
	Logger   zerolog.Logger
}

// Service estimates towing drive legs.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a routing service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger.With().Str("component", "routing_service").Logger(),
	}
}

// EstimateLeg estimates the towing drive leg between two points. The
// provider's duration already includes the towing factor; on top of that the
// duration is floored so the implied average speed never exceeds
// minAverageSpeedKmh. If the provider fails, a straight-line heuristic takes
// over and the result is marked Estimated. maxDriveHours, when non-nil, is
// judged against the final duration.
func (s *Service) EstimateLeg(ctx context.Context, from, to Coordinate, maxDriveHours *float64) (*Leg, error) {
	if err := validateCoordinate(from); err != nil {
		return nil, err
	}
	if err := validateCoordinate(to); err != nil {
		return nil, err
	}

	var (
		distanceKm float64
		driveHours float64
		estimated  bool
	)

	route, err := s.provider.GetRoute(ctx, from, to)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("provider", s.provider.Name()).
			Msg("directions provider failed, using straight-line estimate")

		distanceKm = HaversineKm(from.Lat, from.Lon, to.Lat, to.Lon) * fallbackRoadFactor
		driveHours = distanceKm / fallbackAverageSpeedKmh
		estimated = true
	} else {
		distanceKm = route.DistanceKm
		driveHours = route.DurationHours
	}

	if floor := distanceKm / minAverageSpeedKmh; driveHours < floor {
		driveHours = floor
	}

	leg := &Leg{
		DistanceKm:    round1(distanceKm),
		DriveHours:    round2(driveHours),
		MaxDriveHours: maxDriveHours,
		Estimated:     estimated,
	}
	if maxDriveHours != nil {
		within := leg.DriveHours <= *maxDriveHours
		leg.WithinLimit = &within
	}
	return leg, nil
}

// ProviderName returns the name of the configured directions provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

func validateCoordinate(c Coordinate) error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return ErrInvalidCoordinates
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
