package places

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockPlacesAPI implements driven.PlacesAPI for testing.
type mockPlacesAPI struct {
	mu       sync.Mutex
	hits     map[string][]driven.PlaceRef // keyword -> refs
	details  map[string]*driven.PlaceDetails
	failKW   map[string]bool
	searched []string
}

func (m *mockPlacesAPI) TextSearch(_ context.Context, keyword string, _, _, _ float64) ([]driven.PlaceRef, error) {
	m.mu.Lock()
	m.searched = append(m.searched, keyword)
	m.mu.Unlock()
	if m.failKW[keyword] {
		return nil, domain.ErrSourceUnavailable
	}
	return m.hits[keyword], nil
}

func (m *mockPlacesAPI) Details(_ context.Context, ref driven.PlaceRef) (*driven.PlaceDetails, error) {
	d, ok := m.details[ref.PlaceID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func mentalHealthQuery() domain.Query {
	return domain.Query{Category: "Mental Health Services", Lat: 42.3601, Lng: -71.0589, RadiusMeters: 1000}
}

// TestSource_KeywordExpansion tests that a category fans out to all its keywords
func TestSource_KeywordExpansion(t *testing.T) {
	api := &mockPlacesAPI{hits: map[string][]driven.PlaceRef{}, details: map[string]*driven.PlaceDetails{}}

	src := NewSource(api)
	_, err := src.Fetch(context.Background(), mentalHealthQuery())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(api.searched), 3)
	assert.Contains(t, api.searched, "mental health services")
	assert.Contains(t, api.searched, "therapy")
	assert.Contains(t, api.searched, "counseling")
}

// TestSource_AccumulatesAcrossKeywords tests best-effort accumulation with one keyword down
func TestSource_AccumulatesAcrossKeywords(t *testing.T) {
	api := &mockPlacesAPI{
		hits: map[string][]driven.PlaceRef{
			"mental health services": {{PlaceID: "p1", Name: "Clinic One"}},
			"counseling":             {{PlaceID: "p2", Name: "Counseling Two"}},
		},
		failKW: map[string]bool{"therapy": true},
		details: map[string]*driven.PlaceDetails{
			"p1": {Name: "Clinic One", Address: "1 Main St", Coordinate: domain.Coordinate{Lat: 42.36, Lon: -71.05}},
			"p2": {Name: "Counseling Two", Address: "2 Main St", Coordinate: domain.Coordinate{Lat: 42.37, Lon: -71.06}},
		},
	}

	src := NewSource(api)
	out, err := src.Fetch(context.Background(), mentalHealthQuery())

	require.NoError(t, err, "one failing keyword must not abort the others")
	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, domain.SourcePlacesAPI, out[0].Source)
	assert.Equal(t, []string{"Mental Health Services"}, out[0].ServiceTypes)
}

// TestSource_AllKeywordsFailed tests the SourceUnavailable path
func TestSource_AllKeywordsFailed(t *testing.T) {
	api := &mockPlacesAPI{
		failKW: map[string]bool{"mental health services": true, "therapy": true, "counseling": true},
	}

	src := NewSource(api)
	_, err := src.Fetch(context.Background(), mentalHealthQuery())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

// TestSource_DuplicateHitsCollapsed tests that a place surfacing under two keywords appears once
func TestSource_DuplicateHitsCollapsed(t *testing.T) {
	ref := driven.PlaceRef{PlaceID: "p1", Name: "Shared Clinic"}
	api := &mockPlacesAPI{
		hits: map[string][]driven.PlaceRef{
			"mental health services": {ref},
			"therapy":                {ref},
			"counseling":             {ref},
		},
		details: map[string]*driven.PlaceDetails{
			"p1": {Name: "Shared Clinic", Coordinate: domain.Coordinate{Lat: 42.36, Lon: -71.05}},
		},
	}

	src := NewSource(api)
	out, err := src.Fetch(context.Background(), mentalHealthQuery())

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

// TestSource_DetailFailureDropsOnlyThatHit tests per-hit degradation
func TestSource_DetailFailureDropsOnlyThatHit(t *testing.T) {
	api := &mockPlacesAPI{
		hits: map[string][]driven.PlaceRef{
			"mental health services": {
				{PlaceID: "good", Name: "Good"},
				{PlaceID: "gone", Name: "Gone"},
			},
		},
		details: map[string]*driven.PlaceDetails{
			"good": {Name: "Good", Coordinate: domain.Coordinate{Lat: 42.36, Lon: -71.05}},
		},
	}

	src := NewSource(api)
	out, err := src.Fetch(context.Background(), mentalHealthQuery())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "good", out[0].ID)
}

// TestKeywordsFor tests category expansion lookups
func TestKeywordsFor(t *testing.T) {
	assert.Equal(t, []string{"mental health services", "therapy", "counseling"}, keywordsFor("Mental Health Services"))
	assert.Equal(t, []string{"social services"}, keywordsFor("all"))
	assert.Equal(t, []string{"social services"}, keywordsFor(""))
	assert.Equal(t, []string{"needle exchange"}, keywordsFor("Needle Exchange"))
}
