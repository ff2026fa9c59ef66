package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

func foodQuery(radius float64) domain.Query {
	return domain.Query{Category: "Food", Lat: 42.3601, Lng: -71.0589, RadiusMeters: radius}
}

// TestFilter_EmptyCoordinatesNeverPass tests the fail-closed rule for unknown locations
func TestFilter_EmptyCoordinatesNeverPass(t *testing.T) {
	hotline := domain.Record{
		ID:           "h",
		Name:         "Food Hotline",
		ServiceTypes: []string{"Food"},
		Source:       domain.SourceSpreadsheetFeed,
	}

	for _, radius := range []float64{10, 1000, 1e7} {
		out := Filter([]domain.Record{hotline}, foodQuery(radius))
		assert.Empty(t, out, "radius %v", radius)
	}
}

// TestFilter_RadiusExcludesDistantRecords tests the distance predicate
func TestFilter_RadiusExcludesDistantRecords(t *testing.T) {
	// ~5km north of the query point.
	distant := domain.Record{
		ID:           "d",
		Name:         "Distant Pantry",
		ServiceTypes: []string{"Food"},
		Coordinates:  []domain.Coordinate{{Lat: 42.405, Lon: -71.0589}},
		Source:       domain.SourceLocalStore,
	}

	assert.Empty(t, Filter([]domain.Record{distant}, foodQuery(10)))
	assert.Len(t, Filter([]domain.Record{distant}, foodQuery(10000)), 1)
}

// TestFilter_AnyLocationQualifies tests multi-site records
func TestFilter_AnyLocationQualifies(t *testing.T) {
	multi := domain.Record{
		ID:           "m",
		Name:         "Two Site Org",
		ServiceTypes: []string{"Food"},
		Coordinates: []domain.Coordinate{
			{Lat: 41.0, Lon: -70.0},        // far away
			{Lat: 42.3602, Lon: -71.0589},  // ~11m away
		},
		Source: domain.SourceSpreadsheetFeed,
	}

	out := Filter([]domain.Record{multi}, foodQuery(100))
	assert.Len(t, out, 1)
}

// TestFilter_CategoryMatching tests the type predicate
func TestFilter_CategoryMatching(t *testing.T) {
	near := []domain.Coordinate{{Lat: 42.3601, Lon: -71.0589}}

	tests := []struct {
		name     string
		record   domain.Record
		category string
		pass     bool
	}{
		{
			name:     "exact tag",
			record:   domain.Record{ID: "1", Name: "X", ServiceTypes: []string{"Food"}, Coordinates: near},
			category: "Food",
			pass:     true,
		},
		{
			name:     "case insensitive tag",
			record:   domain.Record{ID: "2", Name: "X", ServiceTypes: []string{"FOOD PANTRY"}, Coordinates: near},
			category: "food",
			pass:     true,
		},
		{
			name:     "name fallback for untagged sources",
			record:   domain.Record{ID: "3", Name: "Boston Food Bank", Coordinates: near, Source: domain.SourcePlacesAPI},
			category: "food",
			pass:     true,
		},
		{
			name:     "no match",
			record:   domain.Record{ID: "4", Name: "Legal Aid", ServiceTypes: []string{"Legal"}, Coordinates: near},
			category: "food",
			pass:     false,
		},
		{
			name:     "wildcard all",
			record:   domain.Record{ID: "5", Name: "Anything", ServiceTypes: []string{"Housing"}, Coordinates: near},
			category: "all",
			pass:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := domain.Query{Category: tt.category, Lat: 42.3601, Lng: -71.0589, RadiusMeters: 1000}
			out := Filter([]domain.Record{tt.record}, q)
			if tt.pass {
				require.Len(t, out, 1)
			} else {
				assert.Empty(t, out)
			}
		})
	}
}
