package driven

import (
	"context"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// Geocoder resolves free-text addresses into coordinates.
type Geocoder interface {
	// Geocode returns the best-match coordinate for the address text.
	// Failures wrap domain.ErrSourceUnavailable; an address the provider
	// cannot resolve returns domain.ErrNotFound.
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}
