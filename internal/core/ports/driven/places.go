package driven

import (
	"context"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// PlaceRef identifies one text-search hit well enough to fetch its details.
type PlaceRef struct {
	// PlaceID is the provider's stable place identifier.
	PlaceID string

	// Name is the display name returned by the search, kept for logging.
	Name string
}

// PlaceDetails is the subset of a provider detail lookup the pipeline
// consumes.
type PlaceDetails struct {
	Name       string
	Address    string
	Coordinate domain.Coordinate
	Phone      string
	Website    string
	Hours      string
	Summary    string
	MapsURL    string
}

// PlacesAPI is the third-party places-search collaborator.
type PlacesAPI interface {
	// TextSearch returns place references matching the keyword near the
	// point. Failures wrap domain.ErrSourceUnavailable.
	TextSearch(ctx context.Context, keyword string, lat, lng, radiusMeters float64) ([]PlaceRef, error)

	// Details fetches the descriptive fields for one search hit.
	Details(ctx context.Context, ref PlaceRef) (*PlaceDetails, error)
}
