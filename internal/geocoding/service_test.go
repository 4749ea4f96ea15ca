package geocoding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touringbrain/touringbrain/internal/geocoding"
)

type mockProvider struct {
	results map[string][]geocoding.Place
	err     error
	queries []string
}

func (m *mockProvider) Search(_ context.Context, query string, _ int) ([]geocoding.Place, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.results[query], nil
}

func (m *mockProvider) Name() string { return "mock" }

func newService(p geocoding.Provider) *geocoding.Service {
	return geocoding.NewService(geocoding.ServiceConfig{Provider: p, Logger: zerolog.Nop()})
}

func TestResolveOne_PicksMostPopulous(t *testing.T) {
	provider := &mockProvider{results: map[string][]geocoding.Place{
		"Hamilton": {
			{Name: "Hamilton", Lat: -37.9, Lon: 175.5, Population: 100},
			{Name: "Hamilton", Lat: -37.787, Lon: 175.279, Population: 169300},
		},
	}}
	svc := newService(provider)

	place, err := svc.ResolveOne(context.Background(), "Hamilton")
	require.NoError(t, err)
	assert.InDelta(t, -37.787, place.Lat, 0.001)
}

func TestResolveOne_AppliesAliases(t *testing.T) {
	provider := &mockProvider{results: map[string][]geocoding.Place{
		"Mount Cook Village": {
			{Name: "Mount Cook Village", Lat: -43.73, Lon: 170.1},
		},
	}}
	svc := newService(provider)

	for _, q := range []string{"Mt Cook", "aoraki", "Mt. Cook"} {
		place, err := svc.ResolveOne(context.Background(), q)
		require.NoError(t, err, "query %q", q)
		assert.Equal(t, "Mount Cook Village", place.Name)
	}
}

func TestResolveOne_RetriesWithNZSuffix(t *testing.T) {
	provider := &mockProvider{results: map[string][]geocoding.Place{
		"Ohau, NZ": {{Name: "Ohau", Lat: -44.23, Lon: 169.85}},
	}}
	svc := newService(provider)

	place, err := svc.ResolveOne(context.Background(), "Ohau")
	require.NoError(t, err)
	assert.Equal(t, "Ohau", place.Name)
	assert.Equal(t, []string{"Ohau", "Ohau, NZ"}, provider.queries)
}

func TestResolveOne_NoRetryWhenQueryHasComma(t *testing.T) {
	provider := &mockProvider{results: map[string][]geocoding.Place{}}
	svc := newService(provider)

	_, err := svc.ResolveOne(context.Background(), "Nowhere, NZ")
	var notFound *geocoding.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Len(t, provider.queries, 1)
}

func TestResolveOne_NotFound(t *testing.T) {
	provider := &mockProvider{results: map[string][]geocoding.Place{}}
	svc := newService(provider)

	_, err := svc.ResolveOne(context.Background(), "Atlantis")
	var notFound *geocoding.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Atlantis", notFound.Query)
}

func TestResolveOne_EmptyQuery(t *testing.T) {
	svc := newService(&mockProvider{})

	_, err := svc.ResolveOne(context.Background(), "   ")
	assert.ErrorIs(t, err, geocoding.ErrEmptyQuery)
}

func TestResolveOne_ProviderError(t *testing.T) {
	svc := newService(&mockProvider{err: errors.New("timeout")})

	_, err := svc.ResolveOne(context.Background(), "Taupo")
	assert.ErrorIs(t, err, geocoding.ErrProviderUnavailable)
}
