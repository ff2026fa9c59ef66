package driving

import (
	"context"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// AggregateService merges service records from every configured source
// and filters them for a query.
type AggregateService interface {
	// Aggregate fans out to all sources, deduplicates, and filters.
	// It fails only when every source fails.
	Aggregate(ctx context.Context, q domain.Query) ([]domain.Record, error)
}
