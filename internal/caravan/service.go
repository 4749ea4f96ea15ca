// Package caravan scores the next few days for towing from a single
// location and recommends which day to move on.
package caravan

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/forecast"
	"github.com/touringbrain/touringbrain/internal/weather"
)

// scoreDays is the fixed window the recommendation matrix reasons over.
const scoreDays = 3

// Day is one scored day. WindGustKmh carries the daily wind maximum for
// display; the stress score and park-up flag use the true gust.
type Day struct {
	Date           time.Time
	RainMm         float64
	WindAvgKmh     float64
	WindAvgKnots   float64
	WindGustKmh    float64
	WindGustKnots  float64
	TowingStress   int
	OvernightTempC float64
	Summary        string
}

// Score is the scored window plus a move/stay recommendation.
type Score struct {
	Days           []Day
	Recommendation string
}

// WeatherService fetches daily forecast series.
type WeatherService interface {
	GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*weather.DailySeries, error)
}

// ServiceConfig holds the configuration for creating a caravan Service.
type ServiceConfig struct {
	Weather WeatherService
	Logger  zerolog.Logger
}

// Service scores towing days.
type Service struct {
	weather WeatherService
	logger  zerolog.Logger
}

// NewService creates a caravan service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		weather: cfg.Weather,
		logger:  cfg.Logger.With().Str("component", "caravan_service").Logger(),
	}
}

// ScoreLocation scores the next three days at a location.
func (s *Service) ScoreLocation(ctx context.Context, lat, lon float64) (*Score, error) {
	series, err := s.weather.GetDailyForecast(ctx, lat, lon, scoreDays)
	if err != nil {
		return nil, err
	}

	days := make([]Day, 0, len(series.Days))
	parkUp := make([]bool, 0, len(series.Days))
	for _, obs := range series.Days {
		avg := forecast.AverageWind(obs.WindPeakKmh)
		stress := forecast.StressScore(avg, obs.WindGustKmh, obs.RainMm)

		days = append(days, Day{
			Date:           obs.Date,
			RainMm:         obs.RainMm,
			WindAvgKmh:     avg,
			WindAvgKnots:   forecast.KmhToKnots(avg),
			WindGustKmh:    obs.WindPeakKmh,
			WindGustKnots:  forecast.KmhToKnots(obs.WindPeakKmh),
			TowingStress:   stress,
			OvernightTempC: obs.TempMinC,
			Summary:        forecast.CaravanSummary(obs.RainMm, avg, obs.WindGustKmh, obs.TempMinC),
		})
		parkUp = append(parkUp, forecast.ParkUp(avg, obs.WindGustKmh))
	}

	return &Score{
		Days:           days,
		Recommendation: recommendation(parkUp),
	}, nil
}

// recommendation reads the park-up flags for today and the next two days
// and names the best towing window.
func recommendation(parkUp []bool) string {
	flag := func(i int) bool { return i < len(parkUp) && parkUp[i] }
	today, day2, day3 := flag(0), flag(1), flag(2)

	switch {
	case today && !(day2 || day3):
		return "Park up today – winds hit our 30 km/h threshold. Tomorrow or Day 3 look better."
	case day2 && !today:
		return "Today is a better towing day than tomorrow. If you can, move today and park up tomorrow."
	case today && day2 && !day3:
		return "Next two days look windy. Best towing window is on Day 3 if you can wait."
	default:
		return "No obvious 'park up' days from wind alone – choose the day that suits your plans."
	}
}
