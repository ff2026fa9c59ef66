// Package sheets adapts the vetted-organisation spreadsheet into a service
// source: one record per row, with every address segment geocoded.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ServiceSource = (*Source)(nil)

// Source reads all rows of one sheet and geocodes their addresses.
// It is expensive and rate limited; production callers wrap it in a
// services.SheetCache rather than fetching per request.
type Source struct {
	reader   driven.SheetReader
	geocoder driven.Geocoder
	sheetID  string
}

// NewSource creates a spreadsheet source for the given sheet identity.
func NewSource(reader driven.SheetReader, geocoder driven.Geocoder, sheetID string) *Source {
	return &Source{reader: reader, geocoder: geocoder, sheetID: sheetID}
}

// Name implements driven.ServiceSource.
func (s *Source) Name() string {
	return string(domain.SourceSpreadsheetFeed)
}

// Fetch implements driven.ServiceSource. An empty sheet is an empty result,
// not an error; malformed rows are dropped individually.
func (s *Source) Fetch(ctx context.Context, _ domain.Query) ([]domain.Record, error) {
	rows, err := s.reader.ReadRows(ctx, s.sheetID)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", s.sheetID, err)
	}

	out := make([]domain.Record, 0, len(rows))
	for i, row := range rows {
		rec, err := parseRow(row)
		if err != nil {
			if errors.Is(err, domain.ErrMalformedRecord) {
				logger.Warn("sheet %s: dropping row %d: %v", s.sheetID, i+1, err)
				continue
			}
			return nil, fmt.Errorf("parse sheet row %d: %w", i+1, err)
		}

		rec.Coordinates = s.geocodeAddresses(ctx, rec.Addresses)
		out = append(out, rec)
	}

	return out, nil
}

// geocodeAddresses resolves each geocodable address segment concurrently.
// Segment order is preserved; segments the geocoder cannot resolve are
// skipped, so the result may be shorter than the address list.
func (s *Source) geocodeAddresses(ctx context.Context, addresses []string) []domain.Coordinate {
	// Without a geocoder the records still surface, they just carry no
	// coordinates and never match a distance filter.
	if s.geocoder == nil || len(addresses) == 0 {
		return nil
	}

	resolved := make([]*domain.Coordinate, len(addresses))

	var wg sync.WaitGroup
	for i, addr := range addresses {
		if !geocodable(addr) {
			continue
		}
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()
			coord, err := s.geocoder.Geocode(ctx, addr)
			if err != nil {
				logger.Warn("geocode %q failed: %v", addr, err)
				return
			}
			resolved[i] = &coord
		}(i, addr)
	}
	wg.Wait()

	var out []domain.Coordinate
	for _, c := range resolved {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
