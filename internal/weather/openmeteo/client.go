// Package openmeteo provides a client for the Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/forecast"
	"github.com/touringbrain/touringbrain/internal/provider/resilience"
	"github.com/touringbrain/touringbrain/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "open-meteo"

	// DefaultBaseURL is the Open-Meteo forecast API base URL.
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"
)

// dailyParams are the daily variables requested from Open-Meteo.
const dailyParams = "precipitation_sum,wind_speed_10m_max,wind_gusts_10m_max,temperature_2m_min"

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to Open-Meteo).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo forecast API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetDailyForecast fetches the daily forecast series for a location.
// Entries with unparsable dates are skipped; the caller decides whether an
// empty result is an error.
func (c *Client) GetDailyForecast(ctx context.Context, lat, lon float64, days int) (*weather.DailySeries, error) {
	params := url.Values{
		"latitude":      {fmt.Sprintf("%.6f", lat)},
		"longitude":     {fmt.Sprintf("%.6f", lon)},
		"daily":         {dailyParams},
		"forecast_days": {strconv.Itoa(days)},
		"timezone":      {"auto"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var omResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return c.toSeries(lat, lon, &omResp)
}

// toSeries converts an Open-Meteo response into the domain series. The five
// daily arrays are aligned by index; a short array truncates the series.
func (c *Client) toSeries(lat, lon float64, resp *forecastResponse) (*weather.DailySeries, error) {
	d := resp.Daily
	if d == nil {
		return nil, fmt.Errorf("response missing daily block")
	}

	n := len(d.Time)
	for _, l := range []int{len(d.PrecipitationSum), len(d.WindSpeedMax), len(d.WindGustsMax), len(d.TemperatureMin)} {
		if l < n {
			n = l
		}
	}

	series := &weather.DailySeries{
		Lat:       lat,
		Lon:       lon,
		Days:      make([]forecast.Observation, 0, n),
		FetchedAt: time.Now(),
	}

	for i := 0; i < n; i++ {
		date, err := time.Parse("2006-01-02", d.Time[i])
		if err != nil {
			// One bad entry must not sink the rest of the series.
			c.logger.Warn().
				Str("date", d.Time[i]).
				Msg("skipping daily entry with unparsable date")
			continue
		}

		series.Days = append(series.Days, forecast.Observation{
			Date:        date,
			RainMm:      d.PrecipitationSum[i],
			WindPeakKmh: d.WindSpeedMax[i],
			WindGustKmh: d.WindGustsMax[i],
			TempMinC:    d.TemperatureMin[i],
		})
	}

	return series, nil
}

// Open-Meteo API response types.

type forecastResponse struct {
	Daily *dailyBlock `json:"daily"`
}

type dailyBlock struct {
	Time             []string  `json:"time"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
	WindGustsMax     []float64 `json:"wind_gusts_10m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
}
