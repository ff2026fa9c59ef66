package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// --- Mock implementations ---

// mockSheetSource implements driven.ServiceSource for testing.
type mockSheetSource struct {
	mu      sync.Mutex
	records []domain.Record
	err     error
	calls   int32
}

func (m *mockSheetSource) Name() string { return "spreadsheet-feed" }

func (m *mockSheetSource) Fetch(_ context.Context, _ domain.Query) ([]domain.Record, error) {
	atomic.AddInt32(&m.calls, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockSheetSource) setErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *mockSheetSource) fetchCount() int32 {
	return atomic.LoadInt32(&m.calls)
}

// fakeClock advances manually, so TTL expiry needs no wall-clock sleeps.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newCacheWithClock(src *mockSheetSource) (*SheetCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewSheetCache(src, DefaultSheetTTL)
	cache.SetClock(clock.Now)
	return cache, clock
}

var cacheQuery = domain.Query{Category: "Food", Lat: 42.36, Lng: -71.05, RadiusMeters: 1000}

// TestSheetCache_SingleFetchWithinTTL tests memoization idempotence
func TestSheetCache_SingleFetchWithinTTL(t *testing.T) {
	src := &mockSheetSource{records: []domain.Record{{ID: "a", Name: "A", Source: domain.SourceSpreadsheetFeed}}}
	cache, clock := newCacheWithClock(src)
	ctx := context.Background()

	first, err := cache.Fetch(ctx, cacheQuery)
	require.NoError(t, err)
	require.Len(t, first, 1)

	clock.Advance(19 * time.Second)

	second, err := cache.Fetch(ctx, cacheQuery)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, src.fetchCount(), "second call within TTL must not refetch")
}

// TestSheetCache_RefetchAfterTTL tests expiry behaviour
func TestSheetCache_RefetchAfterTTL(t *testing.T) {
	src := &mockSheetSource{records: []domain.Record{{ID: "a", Name: "A", Source: domain.SourceSpreadsheetFeed}}}
	cache, clock := newCacheWithClock(src)
	ctx := context.Background()

	_, err := cache.Fetch(ctx, cacheQuery)
	require.NoError(t, err)

	clock.Advance(21 * time.Second)

	_, err = cache.Fetch(ctx, cacheQuery)
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.fetchCount())
}

// TestSheetCache_StaleOnRefreshFailure tests the availability-over-freshness tradeoff
func TestSheetCache_StaleOnRefreshFailure(t *testing.T) {
	cached := []domain.Record{{ID: "a", Name: "A", Source: domain.SourceSpreadsheetFeed}}
	src := &mockSheetSource{records: cached}
	cache, clock := newCacheWithClock(src)
	ctx := context.Background()

	_, err := cache.Fetch(ctx, cacheQuery)
	require.NoError(t, err)

	src.setErr(domain.ErrSourceUnavailable)
	clock.Advance(time.Minute)

	got, err := cache.Fetch(ctx, cacheQuery)
	require.NoError(t, err, "failed refresh must not surface while stale data exists")
	assert.Equal(t, cached, got)
}

// TestSheetCache_FirstFetchFailurePropagates tests the empty-cache error path
func TestSheetCache_FirstFetchFailurePropagates(t *testing.T) {
	src := &mockSheetSource{err: domain.ErrSourceUnavailable}
	cache, _ := newCacheWithClock(src)

	_, err := cache.Fetch(context.Background(), cacheQuery)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

// TestSheetCache_ConcurrentCallersShareOneRefetch tests the single-flight invariant
func TestSheetCache_ConcurrentCallersShareOneRefetch(t *testing.T) {
	src := &mockSheetSource{records: []domain.Record{{ID: "a", Name: "A", Source: domain.SourceSpreadsheetFeed}}}
	cache, _ := newCacheWithClock(src)
	ctx := context.Background()

	const callers = 16
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Fetch(ctx, cacheQuery)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, src.fetchCount(), "concurrent cold-start callers must share one fetch")
}

// TestSheetCache_Name tests source name passthrough
func TestSheetCache_Name(t *testing.T) {
	cache := NewSheetCache(&mockSheetSource{}, 0)
	assert.Equal(t, "spreadsheet-feed", cache.Name())
}
