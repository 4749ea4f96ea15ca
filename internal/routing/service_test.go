package routing_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touringbrain/touringbrain/internal/routing"
)

// mockProvider is a mock directions provider for testing.
type mockProvider struct {
	route *routing.Route
	err   error
	calls int
}

func (m *mockProvider) GetRoute(_ context.Context, _, _ routing.Coordinate) (*routing.Route, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.route, nil
}

func (m *mockProvider) Name() string { return "mock" }

var (
	wellington = routing.Coordinate{Lat: -41.2866, Lon: 174.7756}
	taupo      = routing.Coordinate{Lat: -38.6857, Lon: 176.0702}
)

func newService(p routing.Provider) *routing.Service {
	return routing.NewService(routing.ServiceConfig{
		Provider: p,
		Logger:   zerolog.Nop(),
	})
}

func TestEstimateLeg_UsesProviderFigures(t *testing.T) {
	provider := &mockProvider{route: &routing.Route{DistanceKm: 180, DurationHours: 2.5}}
	svc := newService(provider)

	leg, err := svc.EstimateLeg(context.Background(), wellington, taupo, nil)
	require.NoError(t, err)

	assert.InDelta(t, 180.0, leg.DistanceKm, 0.001)
	assert.InDelta(t, 2.5, leg.DriveHours, 0.001)
	assert.False(t, leg.Estimated)
	assert.Nil(t, leg.WithinLimit)
	assert.Equal(t, 1, provider.calls)
}

func TestEstimateLeg_FloorsImpliedAverageSpeed(t *testing.T) {
	// 180 km in 1.5 h implies 120 km/h; the floor stretches it to 2 h.
	provider := &mockProvider{route: &routing.Route{DistanceKm: 180, DurationHours: 1.5}}
	svc := newService(provider)

	leg, err := svc.EstimateLeg(context.Background(), wellington, taupo, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, leg.DriveHours, 0.001)
}

func TestEstimateLeg_FallsBackOnProviderError(t *testing.T) {
	provider := &mockProvider{err: routing.ErrProviderUnavailable}
	svc := newService(provider)

	leg, err := svc.EstimateLeg(context.Background(), wellington, taupo, nil)
	require.NoError(t, err)

	assert.True(t, leg.Estimated)

	straight := routing.HaversineKm(wellington.Lat, wellington.Lon, taupo.Lat, taupo.Lon)
	assert.InDelta(t, straight*1.25, leg.DistanceKm, 0.1)
	assert.Greater(t, leg.DriveHours, 0.0)
}

func TestEstimateLeg_FallbackAlsoFloored(t *testing.T) {
	provider := &mockProvider{err: errors.New("boom")}
	svc := newService(provider)

	leg, err := svc.EstimateLeg(context.Background(), wellington, taupo, nil)
	require.NoError(t, err)

	// Implied speed never exceeds 90 km/h.
	assert.LessOrEqual(t, leg.DistanceKm/leg.DriveHours, 90.0+0.5)
}

func TestEstimateLeg_DriveLimitJudgement(t *testing.T) {
	provider := &mockProvider{route: &routing.Route{DistanceKm: 180, DurationHours: 2.5}}
	svc := newService(provider)

	limit := 3.0
	leg, err := svc.EstimateLeg(context.Background(), wellington, taupo, &limit)
	require.NoError(t, err)
	require.NotNil(t, leg.WithinLimit)
	assert.True(t, *leg.WithinLimit)

	limit = 2.0
	leg, err = svc.EstimateLeg(context.Background(), wellington, taupo, &limit)
	require.NoError(t, err)
	require.NotNil(t, leg.WithinLimit)
	assert.False(t, *leg.WithinLimit)
}

func TestEstimateLeg_InvalidCoordinatesNeverFallBack(t *testing.T) {
	provider := &mockProvider{route: &routing.Route{DistanceKm: 100, DurationHours: 1.5}}
	svc := newService(provider)

	bad := []routing.Coordinate{
		{Lat: math.NaN(), Lon: 174.0},
		{Lat: -91, Lon: 174.0},
		{Lat: -41, Lon: 181},
	}
	for _, c := range bad {
		_, err := svc.EstimateLeg(context.Background(), c, taupo, nil)
		assert.ErrorIs(t, err, routing.ErrInvalidCoordinates)
	}
	assert.Equal(t, 0, provider.calls, "provider must not be called with invalid input")
}

func TestHaversineKm(t *testing.T) {
	// Same point is zero distance.
	assert.InDelta(t, 0.0, routing.HaversineKm(-41.0, 174.0, -41.0, 174.0), 0.0001)

	// One degree of latitude is roughly 111 km.
	assert.InDelta(t, 111.2, routing.HaversineKm(-41.0, 174.0, -42.0, 174.0), 1.0)

	// Wellington to Taupō straight line is roughly 308 km.
	d := routing.HaversineKm(wellington.Lat, wellington.Lon, taupo.Lat, taupo.Lon)
	assert.InDelta(t, 308, d, 10)
}
