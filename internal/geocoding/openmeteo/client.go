// Package openmeteo provides a client for the Open-Meteo geocoding API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/geocoding"
	"github.com/touringbrain/touringbrain/internal/provider/resilience"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "open-meteo-geocoding"

	// DefaultBaseURL is the Open-Meteo geocoding API base URL.
	DefaultBaseURL = "https://geocoding-api.open-meteo.com/v1/search"
)

// NZ bounding box used to rescue results the provider tagged with a missing
// or wrong country code.
const (
	nzMinLat = -47.5
	nzMaxLat = -33.5
	nzMinLon = 165.0
	nzMaxLon = 179.5
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Open-Meteo geocoding client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to Open-Meteo).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo geocoding API client scoped to New Zealand.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo geocoding client.
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

// Search returns up to count NZ places for a query. Results outside New
// Zealand are dropped; results with a missing country tag are kept when
// their coordinates fall inside the NZ bounding box.
func (c *Client) Search(ctx context.Context, query string, count int) ([]geocoding.Place, error) {
	params := url.Values{
		"name":         {query},
		"count":        {strconv.Itoa(count)},
		"language":     {"en"},
		"format":       {"json"},
		"country_code": {"NZ"},
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

	var omResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	out := make([]geocoding.Place, 0, len(omResp.Results))
	for _, r := range omResp.Results {
		if r.Name == "" {
			continue
		}
		if !isNZ(r) {
			continue
		}
		out = append(out, geocoding.Place{
			Name:       r.Name,
			Lat:        r.Latitude,
			Lon:        r.Longitude,
			Admin1:     r.Admin1,
			Country:    r.Country,
			Population: r.Population,
		})
	}

	return out, nil
}

func isNZ(r searchResult) bool {
	if strings.EqualFold(r.CountryCode, "NZ") || r.Country == "New Zealand" {
		return true
	}
	return r.Latitude >= nzMinLat && r.Latitude <= nzMaxLat &&
		r.Longitude >= nzMinLon && r.Longitude <= nzMaxLon
}

// Open-Meteo geocoding API response types.

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Admin1      string  `json:"admin1"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Population  float64 `json:"population"`
}
