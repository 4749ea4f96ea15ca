// Package briefing produces the multi-day touring and camping outlook for a
// single location.
package briefing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/forecast"
	"github.com/touringbrain/touringbrain/internal/weather"
)

const (
	minDays = 1
	maxDays = 7

	// Headline bands on the worst day's stress score.
	headlineCalmMaxStress  = 30
	headlineMixedMaxStress = 60
)

// Day is one day of the briefing. WindGustKmh carries the daily wind
// maximum for display; the stress score is computed from the true gust.
type Day struct {
	Date           time.Time
	RainMm         float64
	WindAvgKmh     float64
	WindAvgKnots   float64
	WindGustKmh    float64
	WindGustKnots  float64
	OvernightTempC float64
	TowingStress   int
	ComfortLabel   string
	Summary        string
}

// Briefing is the full outlook for one location.
type Briefing struct {
	Days           []Day
	Headline       string
	Recommendation string
}

// WeatherService fetches daily forecast series.
type WeatherService interface {
	GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*weather.DailySeries, error)
}

// ServiceConfig holds the configuration for creating a briefing Service.
type ServiceConfig struct {
	Weather WeatherService
	Logger  zerolog.Logger
}

// Service builds daily briefings.
type Service struct {
	weather WeatherService
	logger  zerolog.Logger
}

// NewService creates a briefing service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		weather: cfg.Weather,
		logger:  cfg.Logger.With().Str("component", "briefing_service").Logger(),
	}
}

// Daily builds the outlook for the next `days` days at a location. The day
// count is clamped to [1,7].
func (s *Service) Daily(ctx context.Context, lat, lon float64, days int) (*Briefing, error) {
	if days < minDays {
		days = minDays
	} else if days > maxDays {
		days = maxDays
	}

	series, err := s.weather.GetDailyForecast(ctx, lat, lon, days)
	if err != nil {
		return nil, err
	}

	out := make([]Day, 0, len(series.Days))
	for _, obs := range series.Days {
		avg := forecast.AverageWind(obs.WindPeakKmh)
		stress := forecast.StressScore(avg, obs.WindGustKmh, obs.RainMm)

		out = append(out, Day{
			Date:           obs.Date,
			RainMm:         obs.RainMm,
			WindAvgKmh:     avg,
			WindAvgKnots:   forecast.KmhToKnots(avg),
			WindGustKmh:    obs.WindPeakKmh,
			WindGustKnots:  forecast.KmhToKnots(obs.WindPeakKmh),
			OvernightTempC: obs.TempMinC,
			TowingStress:   stress,
			ComfortLabel:   forecast.BriefingComfortLabel(stress, obs.RainMm, obs.TempMinC),
			Summary:        forecast.BriefingSummary(obs.RainMm, avg, obs.WindGustKmh),
		})
	}
	if len(out) == 0 {
		return nil, weather.ErrNoDailyData
	}

	return &Briefing{
		Days:           out,
		Headline:       headline(out),
		Recommendation: recommendation(out),
	}, nil
}

func headline(days []Day) string {
	maxStress := days[0].TowingStress
	for _, d := range days[1:] {
		if d.TowingStress > maxStress {
			maxStress = d.TowingStress
		}
	}

	switch {
	case maxStress <= headlineCalmMaxStress:
		return "Nice run of days for touring and camping."
	case maxStress <= headlineMixedMaxStress:
		return "Mixed few days – some good windows, some rougher patches."
	default:
		return "Windy or wet spell coming – pick your window carefully."
	}
}

// recommendation names the lowest-stress day. Ties keep the earliest day.
func recommendation(days []Day) string {
	best := days[0]
	for _, d := range days[1:] {
		if d.TowingStress < best.TowingStress {
			best = d
		}
	}

	return fmt.Sprintf(
		"The easiest day to move on, from a towing perspective, looks like %s (%s, stress ~%d/100).",
		best.Date.Format("2006-01-02"),
		strings.ToLower(best.ComfortLabel),
		best.TowingStress,
	)
}
