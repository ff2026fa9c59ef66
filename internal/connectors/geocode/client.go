// Package geocode implements the Geocoder port against the Google Maps
// geocoding REST endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/urban-refuge/aidfinder/internal/connectors/google"
	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Geocoder = (*Client)(nil)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// geocodeResponse is shaped for the API response.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Client resolves address text through the Google geocoding API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *google.RateLimiter
}

// NewClient creates a geocoding client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    google.NewRateLimiter(google.ServiceGeocoding),
	}
}

// SetBaseURL overrides the endpoint. Test hook.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Geocode implements driven.Geocoder.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Coordinate{}, err
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: geocode: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimitError(0)
		return domain.Coordinate{}, fmt.Errorf("%w: geocode: %v", domain.ErrSourceUnavailable, google.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("%w: geocode: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode geocode response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, domain.ErrNotFound)
	default:
		return domain.Coordinate{}, fmt.Errorf("%w: geocode: status %s", domain.ErrSourceUnavailable, body.Status)
	}

	if len(body.Results) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, domain.ErrNotFound)
	}

	loc := body.Results[0].Geometry.Location
	coord := domain.Coordinate{Lat: loc.Lat, Lon: loc.Lng}
	if !coord.Valid() {
		return domain.Coordinate{}, fmt.Errorf("geocode %q: %w", address, domain.ErrMalformedRecord)
	}

	return coord, nil
}
