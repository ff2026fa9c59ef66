package local

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// --- Mock implementations ---

type mockServiceStore struct {
	records []domain.Record
	err     error
}

func (m *mockServiceStore) ListAll(_ context.Context) ([]domain.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockServiceStore) Save(_ context.Context, _ *domain.Record) error { return nil }

type mockReviewStore struct {
	counts map[string]int
	err    error
}

func (m *mockReviewStore) UpvoteCount(_ context.Context, id string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.counts[id], nil
}

func (m *mockReviewStore) Upvote(_ context.Context, _ string) error { return nil }

var anyQuery = domain.Query{Category: "Food", Lat: 42.36, Lng: -71.05, RadiusMeters: 1000}

// TestSource_AttachesUpvotes tests upvote enrichment from the review store
func TestSource_AttachesUpvotes(t *testing.T) {
	store := &mockServiceStore{records: []domain.Record{
		{ID: "a", Name: "Pantry", Coordinates: []domain.Coordinate{{Lat: 42.36, Lon: -71.05}}},
		{ID: "b", Name: "Shelter"},
	}}
	reviews := &mockReviewStore{counts: map[string]int{"a": 7}}

	src := NewSource(store, reviews)
	out, err := src.Fetch(context.Background(), anyQuery)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 7, out[0].Upvotes)
	assert.Equal(t, 0, out[1].Upvotes)
	assert.Equal(t, domain.SourceLocalStore, out[0].Source)
}

// TestSource_StoreFailureSurfaces tests the StoreUnavailable path
func TestSource_StoreFailureSurfaces(t *testing.T) {
	store := &mockServiceStore{err: domain.ErrStoreUnavailable}
	src := NewSource(store, nil)

	_, err := src.Fetch(context.Background(), anyQuery)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

// TestSource_DropsMalformedRecords tests per-record boundary validation
func TestSource_DropsMalformedRecords(t *testing.T) {
	store := &mockServiceStore{records: []domain.Record{
		{ID: "ok", Name: "Fine"},
		{ID: "", Name: "No ID"},
		{ID: "bad", Name: "Bad Coord", Coordinates: []domain.Coordinate{{Lat: 400, Lon: 0}}},
	}}

	src := NewSource(store, nil)
	out, err := src.Fetch(context.Background(), anyQuery)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].ID)
}

// TestSource_ReviewFailureDoesNotDropRecords tests review store degradation
func TestSource_ReviewFailureDoesNotDropRecords(t *testing.T) {
	store := &mockServiceStore{records: []domain.Record{{ID: "a", Name: "Pantry"}}}
	reviews := &mockReviewStore{err: errors.New("reviews db locked")}

	src := NewSource(store, reviews)
	out, err := src.Fetch(context.Background(), anyQuery)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Upvotes)
}
