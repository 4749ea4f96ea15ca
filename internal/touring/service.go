package touring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/forecast"
	"github.com/touringbrain/touringbrain/internal/geocoding"
	"github.com/touringbrain/touringbrain/internal/routing"
	"github.com/touringbrain/touringbrain/internal/weather"
)

const (
	// forecastDays is how far ahead the planner fetches per endpoint.
	forecastDays = 5

	// routeSamples is the wind-exposure sample count along the main leg.
	routeSamples = 9

	// comparisonMarginStress is the stress gap below which the two
	// endpoints are called similar.
	comparisonMarginStress = 5

	windProfileNote = "Wind exposure sampled along the A→B line (not road routing)."
)

// WeatherService fetches daily forecast series.
type WeatherService interface {
	GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*weather.DailySeries, error)
}

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	ResolveOne(ctx context.Context, query string) (*geocoding.Place, error)
}

// RouteEstimator estimates a towing drive leg.
type RouteEstimator interface {
	EstimateLeg(ctx context.Context, from, to routing.Coordinate, maxDriveHours *float64) (*routing.Leg, error)
}

// ServiceConfig holds the configuration for creating a touring Service.
type ServiceConfig struct {
	Weather  WeatherService
	Geocoder Geocoder
	Routes   RouteEstimator
	Logger   zerolog.Logger
}

// Service assembles touring plans from the weather, geocoding and routing
// collaborators.
type Service struct {
	weather  WeatherService
	geocoder Geocoder
	routes   RouteEstimator
	logger   zerolog.Logger
}

// NewService creates a touring service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		weather:  cfg.Weather,
		geocoder: cfg.Geocoder,
		routes:   cfg.Routes,
		logger:   cfg.Logger.With().Str("component", "touring_service").Logger(),
	}
}

// Plan builds the full touring plan for a travel day: both endpoints
// resolved and summarised, the main drive leg, the route wind profile,
// endpoint comparison, and ranked alternative stops.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*Plan, error) {
	from, err := s.resolveLocation(ctx, req.From)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveLocation(ctx, req.To)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("from", from.Name).
		Str("to", to.Name).
		Time("travel_date", req.TravelDate).
		Msg("planning touring leg")

	fromDay, err := s.daySummary(ctx, from.Lat, from.Lon, req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", from.Name, err)
	}
	toDay, err := s.daySummary(ctx, to.Lat, to.Lon, req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", to.Name, err)
	}

	leg, err := s.routes.EstimateLeg(ctx,
		routing.Coordinate{Lat: from.Lat, Lon: from.Lon},
		routing.Coordinate{Lat: to.Lat, Lon: to.Lon},
		req.MaxDriveHours)
	if err != nil {
		return nil, err
	}

	profile, err := s.windProfile(ctx, from, to, req.TravelDate, leg.DistanceKm, routeSamples)
	if err != nil {
		return nil, err
	}

	alternatives, err := s.rankAlternatives(ctx, from, to, req.TravelDate, req.MaxDriveHours)
	if err != nil {
		return nil, err
	}

	routeStress := fromDay.TowingStress
	if toDay.TowingStress > routeStress {
		routeStress = toDay.TowingStress
	}

	return &Plan{
		TravelDate:        req.TravelDate,
		MainLeg:           *leg,
		FromSummary:       LocationSummary{Location: from, Day: fromDay},
		ToSummary:         LocationSummary{Location: to, Day: toDay},
		RouteTowingStress: routeStress,
		ComfortLabel:      string(forecast.RouteComfortLabel(routeStress)),
		Comparison:        compareEndpoints(fromDay, toDay),
		Recommendation: forecast.TouringSummary(
			maxFloat(fromDay.RainMm, toDay.RainMm),
			maxFloat(fromDay.WindAvgKmh, toDay.WindAvgKmh),
			maxFloat(fromDay.WindGustKmh, toDay.WindGustKmh),
			minFloat(fromDay.OvernightTempC, toDay.OvernightTempC),
		),
		WindProfile:  *profile,
		Alternatives: alternatives,
	}, nil
}

// resolveLocation returns the location as-is when both coordinates are
// present, otherwise geocodes the name.
func (s *Service) resolveLocation(ctx context.Context, loc Location) (ResolvedLocation, error) {
	if loc.Lat != nil && loc.Lon != nil {
		return ResolvedLocation{Name: loc.Name, Lat: *loc.Lat, Lon: *loc.Lon}, nil
	}

	name := strings.TrimSpace(loc.Name)
	if name == "" {
		return ResolvedLocation{}, ErrLocationNameRequired
	}

	place, err := s.geocoder.ResolveOne(ctx, name)
	if err != nil {
		return ResolvedLocation{}, err
	}

	resolvedName := place.Name
	if resolvedName == "" {
		resolvedName = name
	}
	return ResolvedLocation{Name: resolvedName, Lat: place.Lat, Lon: place.Lon}, nil
}

// daySummary fetches the forecast at a point and summarises the travel day.
// An exact date match is preferred; otherwise the first entry stands in.
func (s *Service) daySummary(ctx context.Context, lat, lon float64, travelDate time.Time) (DaySummary, error) {
	series, err := s.weather.GetDailyForecast(ctx, lat, lon, forecastDays)
	if err != nil {
		return DaySummary{}, err
	}

	obs := forecast.SelectDay(series.Days, travelDate)
	avg := forecast.AverageWind(obs.WindPeakKmh)
	stress := forecast.StressScore(avg, obs.WindGustKmh, obs.RainMm)

	return DaySummary{
		Date:           travelDate,
		RainMm:         obs.RainMm,
		WindAvgKmh:     avg,
		WindGustKmh:    obs.WindGustKmh,
		TowingStress:   stress,
		OvernightTempC: obs.TempMinC,
		Summary:        forecast.TouringSummary(obs.RainMm, avg, obs.WindGustKmh, obs.TempMinC),
		ParkUp:         forecast.ParkUp(avg, obs.WindGustKmh),
	}, nil
}

// windProfile scores evenly spaced samples along the straight line between
// the endpoints and reports the worst one. Ties keep the earliest sample.
func (s *Service) windProfile(ctx context.Context, from, to ResolvedLocation, travelDate time.Time, legKm float64, samples int) (*WindProfile, error) {
	if samples < 3 {
		samples = 3
	} else if samples > 21 {
		samples = 21
	}

	var (
		worstIdx   int
		worstDay   DaySummary
		worstScore = -1
	)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		lat := lerp(from.Lat, to.Lat, t)
		lon := lerp(from.Lon, to.Lon, t)

		day, err := s.daySummary(ctx, lat, lon, travelDate)
		if err != nil {
			return nil, fmt.Errorf("route sample %d: %w", i+1, err)
		}
		if day.TowingStress > worstScore {
			worstScore = day.TowingStress
			worstIdx = i
			worstDay = day
		}
	}

	return &WindProfile{
		Samples:            samples,
		WorstAtKmFromStart: round1(legKm * float64(worstIdx) / float64(samples-1)),
		WorstWindAvgKmh:    worstDay.WindAvgKmh,
		WorstWindGustKmh:   worstDay.WindGustKmh,
		WorstTowingStress:  worstDay.TowingStress,
		Note:               windProfileNote,
	}, nil
}

func compareEndpoints(fromDay, toDay DaySummary) Comparison {
	switch {
	case fromDay.TowingStress < toDay.TowingStress-comparisonMarginStress:
		return Comparison{BetterForTowing: "from", Reason: "Start is calmer."}
	case toDay.TowingStress < fromDay.TowingStress-comparisonMarginStress:
		return Comparison{BetterForTowing: "to", Reason: "Destination is calmer."}
	default:
		return Comparison{BetterForTowing: "same", Reason: "Conditions are similar."}
	}
}

func routingCoord(l ResolvedLocation) routing.Coordinate {
	return routing.Coordinate{Lat: l.Lat, Lon: l.Lon}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
