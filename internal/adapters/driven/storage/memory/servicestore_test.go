package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// TestServiceStore_SaveAndListAll tests round-tripping records
func TestServiceStore_SaveAndListAll(t *testing.T) {
	store := NewServiceStore()
	ctx := context.Background()

	a := domain.Record{ID: "a", Name: "Pantry", Source: domain.SourceLocalStore}
	b := domain.Record{ID: "b", Name: "Shelter", Source: domain.SourceLocalStore}

	require.NoError(t, store.Save(ctx, &a))
	require.NoError(t, store.Save(ctx, &b))

	out, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID, "insertion order preserved")
	assert.Equal(t, "b", out[1].ID)
}

// TestServiceStore_SaveUpdatesInPlace tests idempotent upsert
func TestServiceStore_SaveUpdatesInPlace(t *testing.T) {
	store := NewServiceStore()
	ctx := context.Background()

	rec := domain.Record{ID: "a", Name: "Pantry", Source: domain.SourceLocalStore}
	require.NoError(t, store.Save(ctx, &rec))

	rec.Name = "Renamed Pantry"
	require.NoError(t, store.Save(ctx, &rec))

	out, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Renamed Pantry", out[0].Name)
}

// TestServiceStore_RejectsMalformed tests boundary validation
func TestServiceStore_RejectsMalformed(t *testing.T) {
	store := NewServiceStore()

	bad := domain.Record{ID: "", Name: "No ID"}
	err := store.Save(context.Background(), &bad)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

// TestReviewStore_UpvoteCounts tests increment and lookup
func TestReviewStore_UpvoteCounts(t *testing.T) {
	store := NewReviewStore()
	ctx := context.Background()

	count, err := store.UpvoteCount(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, 0, count, "unknown IDs report zero, not an error")

	require.NoError(t, store.Upvote(ctx, "a"))
	require.NoError(t, store.Upvote(ctx, "a"))

	count, err = store.UpvoteCount(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
