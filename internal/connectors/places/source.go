package places

import (
	"context"
	"fmt"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ServiceSource = (*Source)(nil)

// Source searches the places provider for each keyword a category expands
// to. Keyword searches are best effort: one failing keyword degrades the
// result, and only every keyword failing marks the whole source down.
type Source struct {
	api driven.PlacesAPI
}

// NewSource creates a places source over the given provider API.
func NewSource(api driven.PlacesAPI) *Source {
	return &Source{api: api}
}

// Name implements driven.ServiceSource.
func (s *Source) Name() string {
	return string(domain.SourcePlacesAPI)
}

// Fetch implements driven.ServiceSource.
func (s *Source) Fetch(ctx context.Context, q domain.Query) ([]domain.Record, error) {
	keywords := keywordsFor(q.Category)

	var out []domain.Record
	seen := make(map[string]bool)
	failed := 0
	var lastErr error

	for _, keyword := range keywords {
		refs, err := s.api.TextSearch(ctx, keyword, q.Lat, q.Lng, q.RadiusMeters)
		if err != nil {
			logger.Warn("places: keyword %q failed: %v", keyword, err)
			failed++
			lastErr = err
			continue
		}
		logger.Debug("places: keyword %q: %d hits", keyword, len(refs))

		for _, ref := range refs {
			if ref.PlaceID == "" || seen[ref.PlaceID] {
				continue
			}
			seen[ref.PlaceID] = true

			rec, err := s.lookup(ctx, ref, q.Category)
			if err != nil {
				logger.Warn("places: details for %q failed: %v", ref.Name, err)
				continue
			}
			out = append(out, rec)
		}
	}

	if failed == len(keywords) && lastErr != nil {
		return nil, fmt.Errorf("all %d keyword searches failed: %w", len(keywords), lastErr)
	}
	return out, nil
}

// lookup fetches details for one hit and builds the record. The provider's
// place ID keeps the record identifier stable across fetches.
func (s *Source) lookup(ctx context.Context, ref driven.PlaceRef, category string) (domain.Record, error) {
	details, err := s.api.Details(ctx, ref)
	if err != nil {
		return domain.Record{}, err
	}

	rec := domain.Record{
		ID:         ref.PlaceID,
		Name:       details.Name,
		Website:    details.Website,
		Summary:    details.Summary,
		Hours:      details.Hours,
		Phone:      details.Phone,
		GoogleLink: details.MapsURL,
		Source:     domain.SourcePlacesAPI,
	}
	if !isWildcard(category) {
		rec.ServiceTypes = []string{category}
	}
	if details.Address != "" {
		rec.Addresses = []string{details.Address}
	}
	if details.Coordinate.Valid() && details.Coordinate != (domain.Coordinate{}) {
		rec.Coordinates = []domain.Coordinate{details.Coordinate}
	}
	if rec.Name == "" {
		rec.Name = ref.Name
	}

	if err := rec.Validate(); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

func isWildcard(category string) bool {
	return domain.Query{Category: category}.Wildcard()
}
