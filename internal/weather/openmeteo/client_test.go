package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touringbrain/touringbrain/internal/weather/openmeteo"
)

const sampleResponse = `{
	"daily": {
		"time": ["2026-03-14", "2026-03-15", "2026-03-16"],
		"precipitation_sum": [0.2, 5.4, 12.0],
		"wind_speed_10m_max": [18.0, 32.5, 55.0],
		"wind_gusts_10m_max": [30.0, 48.0, 80.0],
		"temperature_2m_min": [8.1, 4.0, 1.5]
	}
}`

func newClient(t *testing.T, handler http.HandlerFunc) *openmeteo.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})
}

func TestGetDailyForecast_Success(t *testing.T) {
	var gotQuery map[string][]string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	series, err := client.GetDailyForecast(context.Background(), -41.2866, 174.7756, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"-41.286600"}, gotQuery["latitude"])
	assert.Equal(t, []string{"3"}, gotQuery["forecast_days"])
	assert.Equal(t, []string{"auto"}, gotQuery["timezone"])

	require.Len(t, series.Days, 3)
	first := series.Days[0]
	assert.Equal(t, "2026-03-14", first.Date.Format("2006-01-02"))
	assert.InDelta(t, 0.2, first.RainMm, 0.001)
	assert.InDelta(t, 18.0, first.WindPeakKmh, 0.001)
	assert.InDelta(t, 30.0, first.WindGustKmh, 0.001)
	assert.InDelta(t, 8.1, first.TempMinC, 0.001)
}

func TestGetDailyForecast_SkipsUnparsableDates(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["not-a-date", "2026-03-15"],
				"precipitation_sum": [0.0, 1.0],
				"wind_speed_10m_max": [10.0, 20.0],
				"wind_gusts_10m_max": [15.0, 25.0],
				"temperature_2m_min": [5.0, 6.0]
			}
		}`))
	})

	series, err := client.GetDailyForecast(context.Background(), -41.0, 174.0, 2)
	require.NoError(t, err)
	require.Len(t, series.Days, 1)
	assert.Equal(t, "2026-03-15", series.Days[0].Date.Format("2006-01-02"))
}

func TestGetDailyForecast_ShortArrayTruncatesSeries(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2026-03-14", "2026-03-15"],
				"precipitation_sum": [0.0],
				"wind_speed_10m_max": [10.0, 20.0],
				"wind_gusts_10m_max": [15.0, 25.0],
				"temperature_2m_min": [5.0, 6.0]
			}
		}`))
	})

	series, err := client.GetDailyForecast(context.Background(), -41.0, 174.0, 2)
	require.NoError(t, err)
	assert.Len(t, series.Days, 1)
}

func TestGetDailyForecast_MissingDailyBlock(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.GetDailyForecast(context.Background(), -41.0, 174.0, 2)
	assert.Error(t, err)
}

func TestGetDailyForecast_ServerError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetDailyForecast(context.Background(), -41.0, 174.0, 2)
	assert.Error(t, err)
}
