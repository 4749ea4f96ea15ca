// Package mapbox implements the routing.Provider interface using the
// Mapbox Directions API.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/routing"
)

const (
	// ProviderName identifies this provider in logs.
	ProviderName = "mapbox"

	// DefaultBaseURL is the Mapbox Directions driving profile endpoint.
	DefaultBaseURL = "https://api.mapbox.com/directions/v5/mapbox/driving"

	// DefaultTowingFactor pads car drive times for a towing rig.
	DefaultTowingFactor = 1.10
)

// HTTPDoer performs HTTP requests. Satisfied by *http.Client and the
// resilience client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds the configuration for creating a Mapbox client.
type ClientConfig struct {
	// AccessToken is the Mapbox API token. Required.
	AccessToken string

	// BaseURL overrides the directions endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// TowingFactor multiplies provider durations. Defaults to
	// DefaultTowingFactor when zero or negative.
	TowingFactor float64

	// HTTPClient is the HTTP client to use for requests.
	HTTPClient HTTPDoer

	// Logger is the logger for client operations.
	Logger zerolog.Logger
}

// Client is a Mapbox Directions API client implementing routing.Provider.
type Client struct {
	accessToken  string
	baseURL      string
	towingFactor float64
	httpClient   HTTPDoer
	logger       zerolog.Logger
}

// NewClient creates a new Mapbox Directions client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	towingFactor := cfg.TowingFactor
	if towingFactor <= 0 {
		towingFactor = DefaultTowingFactor
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		accessToken:  cfg.AccessToken,
		baseURL:      baseURL,
		towingFactor: towingFactor,
		httpClient:   httpClient,
		logger:       cfg.Logger.With().Str("provider", ProviderName).Logger(),
	}
}

// GetRoute retrieves the driving route between two points. Durations are
// multiplied by the towing factor before being returned.
func (c *Client) GetRoute(ctx context.Context, from, to routing.Coordinate) (*routing.Route, error) {
	if c.accessToken == "" {
		return nil, routing.ErrMissingToken
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("alternatives", "false")
	params.Set("overview", "false")
	params.Set("steps", "false")

	// Mapbox wants lon,lat pairs separated by semicolons.
	reqURL := fmt.Sprintf("%s/%.6f,%.6f;%.6f,%.6f?%s",
		c.baseURL, from.Lon, from.Lat, to.Lon, to.Lat, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("directions request failed")
		return nil, fmt.Errorf("%w: %v", routing.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, routing.ErrMissingToken
	case resp.StatusCode != http.StatusOK:
		c.logger.Error().
			Int("status_code", resp.StatusCode).
			Msg("directions API returned non-200")
		return nil, fmt.Errorf("%w: status %d", routing.ErrProviderUnavailable, resp.StatusCode)
	}

	var apiResp directionsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if apiResp.Code != "Ok" || len(apiResp.Routes) == 0 {
		return nil, routing.ErrNoRouteFound
	}

	best := apiResp.Routes[0]
	return &routing.Route{
		DistanceKm:    best.Distance / 1000.0,
		DurationHours: best.Duration / 3600.0 * c.towingFactor,
	}, nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// directionsResponse is the subset of the Mapbox Directions payload we use.
type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // metres
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}
