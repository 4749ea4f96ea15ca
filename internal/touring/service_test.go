package touring_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touringbrain/touringbrain/internal/forecast"
	"github.com/touringbrain/touringbrain/internal/geocoding"
	"github.com/touringbrain/touringbrain/internal/routing"
	"github.com/touringbrain/touringbrain/internal/touring"
	"github.com/touringbrain/touringbrain/internal/weather"
)

var travelDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

// mockWeather serves a per-call series computed from the coordinates, so
// route samples and alternatives can see different conditions.
type mockWeather struct {
	observe func(lat, lon float64) forecast.Observation
}

func (m *mockWeather) GetDailyForecast(_ context.Context, lat, lon float64, _ int) (*weather.DailySeries, error) {
	obs := forecast.Observation{Date: travelDate, TempMinC: 10}
	if m.observe != nil {
		obs = m.observe(lat, lon)
		obs.Date = travelDate
	}
	return &weather.DailySeries{Lat: lat, Lon: lon, Days: []forecast.Observation{obs}}, nil
}

type mockGeocoder struct {
	places map[string]*geocoding.Place
}

func (m *mockGeocoder) ResolveOne(_ context.Context, query string) (*geocoding.Place, error) {
	if p, ok := m.places[query]; ok {
		return p, nil
	}
	return nil, &geocoding.NotFoundError{Query: query}
}

type mockRoutes struct {
	leg   routing.Leg
	legFn func(to routing.Coordinate, maxDriveHours *float64) *routing.Leg
}

func (m *mockRoutes) EstimateLeg(_ context.Context, _, to routing.Coordinate, maxDriveHours *float64) (*routing.Leg, error) {
	if m.legFn != nil {
		return m.legFn(to, maxDriveHours), nil
	}
	leg := m.leg
	leg.MaxDriveHours = maxDriveHours
	if maxDriveHours != nil {
		within := leg.DriveHours <= *maxDriveHours
		leg.WithinLimit = &within
	}
	return &leg, nil
}

func newService(w touring.WeatherService, g touring.Geocoder, r touring.RouteEstimator) *touring.Service {
	return touring.NewService(touring.ServiceConfig{
		Weather:  w,
		Geocoder: g,
		Routes:   r,
		Logger:   zerolog.Nop(),
	})
}

func coordLocation(name string, lat, lon float64) touring.Location {
	return touring.Location{Name: name, Lat: &lat, Lon: &lon}
}

func calmRequest() touring.PlanRequest {
	return touring.PlanRequest{
		From:       coordLocation("Wellington", -41.2866, 174.7756),
		To:         coordLocation("Napier", -39.4928, 176.9120),
		TravelDate: travelDate,
	}
}

func TestPlan_CalmConditions(t *testing.T) {
	svc := newService(
		&mockWeather{},
		&mockGeocoder{},
		&mockRoutes{leg: routing.Leg{DistanceKm: 320, DriveHours: 4.0}},
	)

	plan, err := svc.Plan(context.Background(), calmRequest())
	require.NoError(t, err)

	assert.InDelta(t, 320.0, plan.MainLeg.DistanceKm, 0.001)
	assert.Equal(t, 0, plan.RouteTowingStress)
	assert.Equal(t, "good", plan.ComfortLabel)
	assert.Equal(t, "same", plan.Comparison.BetterForTowing)
	assert.Equal(t, "Conditions are similar.", plan.Comparison.Reason)
	assert.False(t, plan.FromSummary.Day.ParkUp)

	assert.Equal(t, 9, plan.WindProfile.Samples)
	assert.Contains(t, plan.WindProfile.Note, "not road routing")

	// All twelve fixed stops survive with no drive budget.
	assert.Len(t, plan.Alternatives, 12)
}

func TestPlan_RouteStressIsWorstEndpoint(t *testing.T) {
	// The destination is windy, the start calm.
	w := &mockWeather{observe: func(lat, _ float64) forecast.Observation {
		if math.Abs(lat-(-39.4928)) < 0.01 {
			return forecast.Observation{WindPeakKmh: 55, WindGustKmh: 65, TempMinC: 10}
		}
		return forecast.Observation{TempMinC: 10}
	}}
	svc := newService(w, &mockGeocoder{}, &mockRoutes{leg: routing.Leg{DistanceKm: 320, DriveHours: 4}})

	plan, err := svc.Plan(context.Background(), calmRequest())
	require.NoError(t, err)

	toStress := plan.ToSummary.Day.TowingStress
	assert.Greater(t, toStress, 0)
	assert.Equal(t, toStress, plan.RouteTowingStress)

	assert.Equal(t, "from", plan.Comparison.BetterForTowing)
	assert.Equal(t, "Start is calmer.", plan.Comparison.Reason)
}

func TestPlan_SmallStressGapIsSame(t *testing.T) {
	// Rain only at the destination, 2 mm, is 4 stress points: inside the
	// similarity margin.
	w := &mockWeather{observe: func(lat, _ float64) forecast.Observation {
		if math.Abs(lat-(-39.4928)) < 0.01 {
			return forecast.Observation{RainMm: 2, TempMinC: 10}
		}
		return forecast.Observation{TempMinC: 10}
	}}
	svc := newService(w, &mockGeocoder{}, &mockRoutes{leg: routing.Leg{DistanceKm: 320, DriveHours: 4}})

	plan, err := svc.Plan(context.Background(), calmRequest())
	require.NoError(t, err)
	assert.Equal(t, "same", plan.Comparison.BetterForTowing)
}

func TestPlan_WindProfileFindsWorstSample(t *testing.T) {
	from := coordLocation("A", -40.0, 174.0)
	to := coordLocation("B", -38.0, 176.0)

	// Only the exact midpoint of the A to B line is windy.
	w := &mockWeather{observe: func(lat, lon float64) forecast.Observation {
		if math.Abs(lat-(-39.0)) < 1e-6 && math.Abs(lon-175.0) < 1e-6 {
			return forecast.Observation{WindPeakKmh: 60, WindGustKmh: 70, TempMinC: 10}
		}
		return forecast.Observation{TempMinC: 10}
	}}
	svc := newService(w, &mockGeocoder{}, &mockRoutes{leg: routing.Leg{DistanceKm: 100, DriveHours: 1.5}})

	plan, err := svc.Plan(context.Background(), touring.PlanRequest{
		From: from, To: to, TravelDate: travelDate,
	})
	require.NoError(t, err)

	// Sample 5 of 9 sits halfway along the 100 km leg.
	assert.InDelta(t, 50.0, plan.WindProfile.WorstAtKmFromStart, 0.001)
	assert.Greater(t, plan.WindProfile.WorstTowingStress, 0)
	assert.InDelta(t, 70.0, plan.WindProfile.WorstWindGustKmh, 0.001)
}

func TestPlan_GeocodesNameOnlyLocations(t *testing.T) {
	geocoder := &mockGeocoder{places: map[string]*geocoding.Place{
		"Wellington": {Name: "Wellington", Lat: -41.2866, Lon: 174.7756},
		"Napier":     {Name: "Napier", Lat: -39.4928, Lon: 176.9120},
	}}
	svc := newService(&mockWeather{}, geocoder, &mockRoutes{leg: routing.Leg{DistanceKm: 320, DriveHours: 4}})

	plan, err := svc.Plan(context.Background(), touring.PlanRequest{
		From:       touring.Location{Name: "Wellington"},
		To:         touring.Location{Name: "Napier"},
		TravelDate: travelDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "Wellington", plan.FromSummary.Location.Name)
	assert.InDelta(t, -39.4928, plan.ToSummary.Location.Lat, 0.001)
}

func TestPlan_EmptyLocationName(t *testing.T) {
	svc := newService(&mockWeather{}, &mockGeocoder{}, &mockRoutes{})

	_, err := svc.Plan(context.Background(), touring.PlanRequest{
		From:       touring.Location{Name: "   "},
		To:         coordLocation("Napier", -39.4928, 176.9120),
		TravelDate: travelDate,
	})
	assert.ErrorIs(t, err, touring.ErrLocationNameRequired)
}

func TestPlan_AlternativesSortedByStress(t *testing.T) {
	// Make northern stops windier than southern ones: stress tracks how far
	// north the candidate sits.
	w := &mockWeather{observe: func(lat, _ float64) forecast.Observation {
		wind := (lat + 45.0) * 10 // Wānaka ~3, Taupō ~63
		if wind < 0 {
			wind = 0
		}
		return forecast.Observation{WindPeakKmh: wind, TempMinC: 10}
	}}
	svc := newService(w, &mockGeocoder{}, &mockRoutes{leg: routing.Leg{DistanceKm: 320, DriveHours: 4}})

	plan, err := svc.Plan(context.Background(), calmRequest())
	require.NoError(t, err)
	require.NotEmpty(t, plan.Alternatives)

	for i := 1; i < len(plan.Alternatives); i++ {
		assert.LessOrEqual(t,
			plan.Alternatives[i-1].TowingStress,
			plan.Alternatives[i].TowingStress,
			"alternatives must be sorted calmest first")
	}
}

func TestPlan_AlternativesSkipStartPoint(t *testing.T) {
	svc := newService(&mockWeather{}, &mockGeocoder{}, &mockRoutes{leg: routing.Leg{DistanceKm: 100, DriveHours: 1.5}})

	// Starting at Taupō drops Taupō from the candidate list.
	plan, err := svc.Plan(context.Background(), touring.PlanRequest{
		From:       coordLocation("Taupō", -38.6857, 176.0702),
		To:         coordLocation("Napier", -39.4928, 176.9120),
		TravelDate: travelDate,
	})
	require.NoError(t, err)

	assert.Len(t, plan.Alternatives, 11)
	for _, alt := range plan.Alternatives {
		assert.NotEqual(t, "Taupō", alt.Name)
	}
}

func TestPlan_AlternativesRespectDriveBudget(t *testing.T) {
	limit := 3.0

	// Every candidate south of -42 is over the budget.
	routes := &mockRoutes{legFn: func(to routing.Coordinate, maxDriveHours *float64) *routing.Leg {
		leg := &routing.Leg{DistanceKm: 200, DriveHours: 2.5, MaxDriveHours: maxDriveHours}
		if to.Lat < -42 {
			leg.DriveHours = 6
		}
		if maxDriveHours != nil {
			within := leg.DriveHours <= *maxDriveHours
			leg.WithinLimit = &within
		}
		return leg
	}}
	svc := newService(&mockWeather{}, &mockGeocoder{}, routes)

	req := calmRequest()
	req.MaxDriveHours = &limit
	plan, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)

	for _, alt := range plan.Alternatives {
		assert.GreaterOrEqual(t, alt.Lat, -42.0, "over-budget stop %s must be excluded", alt.Name)
	}
	assert.NotEmpty(t, plan.Alternatives)
}

func TestPlan_AlternativeNotesNameAlignment(t *testing.T) {
	svc := newService(&mockWeather{}, &mockGeocoder{}, &mockRoutes{leg: routing.Leg{DistanceKm: 320, DriveHours: 4}})

	// Wellington to Napier runs north-east; Wānaka is south-west of the
	// start, so it reads as a side-trip.
	plan, err := svc.Plan(context.Background(), calmRequest())
	require.NoError(t, err)

	byName := make(map[string]touring.Alternative, len(plan.Alternatives))
	for _, alt := range plan.Alternatives {
		byName[alt.Name] = alt
	}

	require.Contains(t, byName, "Wānaka")
	assert.Contains(t, byName["Wānaka"].Note, "Side-trip")

	require.Contains(t, byName, "Taupō")
	assert.Contains(t, byName["Taupō"].Note, "Along route")

	assert.Contains(t, byName["Taupō"].Note, "towing stress 0/100")
}
