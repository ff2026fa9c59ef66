package services

import (
	"context"
	"sync"
	"time"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// Ensure SheetCache implements the interface.
var _ driven.ServiceSource = (*SheetCache)(nil)

// DefaultSheetTTL is how long a fetched sheet snapshot stays fresh.
// The spreadsheet changes rarely, so a short window is enough to spare the
// rate-limited sheet API from per-request fetches.
const DefaultSheetTTL = 20 * time.Second

// cacheEntry is one full, unfiltered sheet snapshot. Entries are replaced
// wholesale on refresh, never partially updated.
type cacheEntry struct {
	records   []domain.Record
	fetchedAt time.Time
}

// SheetCache wraps the spreadsheet source with TTL-gated memoization.
//
// The cache always holds the complete dataset; query filtering happens
// downstream, so the key is the sheet's identity alone. When a refresh past
// the TTL fails, the stale snapshot is returned instead of the error:
// availability is deliberately preferred over freshness for this source.
// Only the first fetch, with nothing cached yet, propagates errors.
type SheetCache struct {
	source driven.ServiceSource
	ttl    time.Duration

	// now is injected so TTL behaviour is testable without sleeps.
	now func() time.Time

	mu      sync.RWMutex
	entry   *cacheEntry
	refresh sync.Mutex // at most one concurrent refetch
}

// NewSheetCache wraps source with a cache holding snapshots for ttl.
// A non-positive ttl falls back to DefaultSheetTTL.
func NewSheetCache(source driven.ServiceSource, ttl time.Duration) *SheetCache {
	if ttl <= 0 {
		ttl = DefaultSheetTTL
	}
	return &SheetCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

// SetClock overrides the cache's notion of now. Test hook.
func (c *SheetCache) SetClock(now func() time.Time) {
	c.now = now
}

// Name implements driven.ServiceSource.
func (c *SheetCache) Name() string {
	return c.source.Name()
}

// Fetch returns the cached snapshot when fresh, refetching otherwise.
// Concurrent callers arriving while a refresh is in flight wait for it
// rather than triggering their own.
func (c *SheetCache) Fetch(ctx context.Context, q domain.Query) ([]domain.Record, error) {
	if records, ok := c.fresh(); ok {
		logger.Debug("sheet cache: hit (%d records)", len(records))
		return records, nil
	}

	c.refresh.Lock()
	defer c.refresh.Unlock()

	// A refresh that finished while we waited for the lock serves us too.
	if records, ok := c.fresh(); ok {
		logger.Debug("sheet cache: refreshed by concurrent caller (%d records)", len(records))
		return records, nil
	}

	records, err := c.source.Fetch(ctx, q)
	if err != nil {
		c.mu.RLock()
		stale := c.entry
		c.mu.RUnlock()
		if stale != nil {
			logger.Warn("sheet cache: refresh failed (%v), serving stale snapshot from %s",
				err, stale.fetchedAt.Format(time.RFC3339))
			return stale.records, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.entry = &cacheEntry{records: records, fetchedAt: c.now()}
	c.mu.Unlock()

	logger.Debug("sheet cache: refreshed (%d records)", len(records))
	return records, nil
}

// fresh returns the cached records when the entry exists and is within TTL.
func (c *SheetCache) fresh() ([]domain.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil {
		return nil, false
	}
	if c.now().Sub(c.entry.fetchedAt) > c.ttl {
		return nil, false
	}
	return c.entry.records, true
}
