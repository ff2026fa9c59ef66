package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driving"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

var _ driving.AggregateService = (*Aggregator)(nil)

// Aggregator orchestrates the aggregation pipeline: fetch from every
// configured source, merge with Deduplicate, apply Filter, return the
// ordered result.
//
// Sources are independent and fetched concurrently. A failing source
// contributes nothing and is logged; the pipeline only fails hard when
// every source fails. Retry policy belongs to each source's transport, not
// here.
type Aggregator struct {
	sources []driven.ServiceSource
}

// NewAggregator creates an aggregator over the given sources. Order matters
// only for failure reporting; merge precedence comes from each record's
// Source tag.
func NewAggregator(sources ...driven.ServiceSource) *Aggregator {
	return &Aggregator{sources: sources}
}

// sourceResult carries one source's fetch outcome across the fan-out.
type sourceResult struct {
	name    string
	records []domain.Record
	err     error
}

// Aggregate runs one request through the pipeline.
func (a *Aggregator) Aggregate(ctx context.Context, q domain.Query) ([]domain.Record, error) {
	logger.Section("Aggregation")
	logger.Debug("query: category=%q point=(%v, %v) radius=%vm", q.Category, q.Lat, q.Lng, q.RadiusMeters)

	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	if len(a.sources) == 0 {
		return nil, fmt.Errorf("aggregate: no sources configured: %w", domain.ErrAllSourcesFailed)
	}

	results := make([]sourceResult, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src driven.ServiceSource) {
			defer wg.Done()
			records, err := src.Fetch(ctx, q)
			results[i] = sourceResult{name: src.Name(), records: records, err: err}
		}(i, src)
	}
	wg.Wait()

	var merged []domain.Record
	var failures []error
	for _, res := range results {
		if res.err != nil {
			logger.Warn("source %s failed: %v", res.name, res.err)
			failures = append(failures, fmt.Errorf("%s: %w", res.name, res.err))
			continue
		}
		logger.Debug("source %s: %d records", res.name, len(res.records))
		merged = append(merged, res.records...)
	}

	if len(failures) == len(a.sources) {
		return nil, fmt.Errorf("aggregate: %w: %v", domain.ErrAllSourcesFailed, failures)
	}

	deduped := Deduplicate(merged)
	logger.Debug("merged %d records into %d after dedup", len(merged), len(deduped))

	filtered := Filter(deduped, q)
	logger.Info("aggregation complete: %d results", len(filtered))

	return filtered, nil
}
