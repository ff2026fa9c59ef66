// Package places implements the places-search source: category queries fan
// out to provider keyword searches, and each hit is enriched with a detail
// lookup.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/urban-refuge/aidfinder/internal/connectors/google"
	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.PlacesAPI = (*Client)(nil)

const (
	defaultSearchURL  = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	defaultDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

	// detailFields limits the detail lookup to what the pipeline consumes.
	detailFields = "name,formatted_address,geometry,opening_hours,website,formatted_phone_number,editorial_summary,url"
)

// textSearchResponse is shaped for the text search API response.
type textSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID string `json:"place_id"`
		Name    string `json:"name"`
	} `json:"results"`
}

// detailsResponse is shaped for the place details API response.
type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		OpeningHours struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Website              string `json:"website"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		EditorialSummary     struct {
			Overview string `json:"overview"`
		} `json:"editorial_summary"`
		URL string `json:"url"`
	} `json:"result"`
}

// Client talks to the Google Places REST endpoints.
type Client struct {
	apiKey     string
	searchURL  string
	detailsURL string
	httpClient *http.Client
	limiter    *google.RateLimiter
}

// NewClient creates a places client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		searchURL:  defaultSearchURL,
		detailsURL: defaultDetailsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    google.NewRateLimiter(google.ServicePlaces),
	}
}

// SetEndpoints overrides the REST endpoints. Test hook.
func (c *Client) SetEndpoints(searchURL, detailsURL string) {
	c.searchURL = searchURL
	c.detailsURL = detailsURL
}

// TextSearch implements driven.PlacesAPI.
func (c *Client) TextSearch(ctx context.Context, keyword string, lat, lng, radiusMeters float64) ([]driven.PlaceRef, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("location", fmt.Sprintf("%.6f,%.6f", lat, lng))
	params.Set("radius", fmt.Sprintf("%.0f", radiusMeters))
	params.Set("key", c.apiKey)

	var body textSearchResponse
	if err := c.getJSON(ctx, c.searchURL, params, &body); err != nil {
		return nil, fmt.Errorf("text search %q: %w", keyword, err)
	}

	switch body.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("%w: text search %q: status %s", domain.ErrSourceUnavailable, keyword, body.Status)
	}

	refs := make([]driven.PlaceRef, 0, len(body.Results))
	for _, res := range body.Results {
		if res.PlaceID == "" {
			continue
		}
		refs = append(refs, driven.PlaceRef{PlaceID: res.PlaceID, Name: res.Name})
	}
	return refs, nil
}

// Details implements driven.PlacesAPI.
func (c *Client) Details(ctx context.Context, ref driven.PlaceRef) (*driven.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", ref.PlaceID)
	params.Set("fields", detailFields)
	params.Set("key", c.apiKey)

	var body detailsResponse
	if err := c.getJSON(ctx, c.detailsURL, params, &body); err != nil {
		return nil, fmt.Errorf("place details %s: %w", ref.PlaceID, err)
	}

	if body.Status != "OK" {
		return nil, fmt.Errorf("%w: place details %s: status %s", domain.ErrSourceUnavailable, ref.PlaceID, body.Status)
	}

	r := body.Result
	return &driven.PlaceDetails{
		Name:       r.Name,
		Address:    r.FormattedAddress,
		Coordinate: domain.Coordinate{Lat: r.Geometry.Location.Lat, Lon: r.Geometry.Location.Lng},
		Phone:      r.FormattedPhoneNumber,
		Website:    r.Website,
		Hours:      strings.Join(r.OpeningHours.WeekdayText, "; "),
		Summary:    r.EditorialSummary.Overview,
		MapsURL:    r.URL,
	}, nil
}

// getJSON performs a rate-limited GET and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimitError(0)
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, google.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
