// Package local adapts the persisted user-submission store into a service
// source for the aggregation pipeline.
package local

import (
	"context"
	"fmt"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ServiceSource = (*Source)(nil)

// Source lists every persisted user-submitted record, attaching the current
// upvote count from the review store. It never filters by query or point;
// filtering is centralised in the pipeline.
type Source struct {
	store   driven.ServiceStore
	reviews driven.ReviewStore
}

// NewSource creates a local source over the given stores. The review store
// is optional; without it every record reports zero upvotes.
func NewSource(store driven.ServiceStore, reviews driven.ReviewStore) *Source {
	return &Source{store: store, reviews: reviews}
}

// Name implements driven.ServiceSource.
func (s *Source) Name() string {
	return string(domain.SourceLocalStore)
}

// Fetch implements driven.ServiceSource. A store failure surfaces as a
// partial-source failure; it is not retried here.
func (s *Source) Fetch(ctx context.Context, _ domain.Query) ([]domain.Record, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local records: %w", err)
	}

	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		rec.Source = domain.SourceLocalStore
		if err := rec.Validate(); err != nil {
			logger.Warn("local store: dropping record %q: %v", rec.ID, err)
			continue
		}
		if s.reviews != nil {
			count, err := s.reviews.UpvoteCount(ctx, rec.ID)
			if err != nil {
				// Upvotes are decoration; a review store hiccup must not
				// drop the record.
				logger.Warn("local store: upvote lookup for %q failed: %v", rec.ID, err)
			} else {
				rec.Upvotes = count
			}
		}
		out = append(out, rec)
	}

	return out, nil
}
