package driven

import (
	"context"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// ServiceStore persists user-submitted service records.
type ServiceStore interface {
	// ListAll returns every persisted record, unfiltered. Reachability
	// failures wrap domain.ErrStoreUnavailable.
	ListAll(ctx context.Context) ([]domain.Record, error)

	// Save stores or updates a record.
	Save(ctx context.Context, rec *domain.Record) error
}

// ReviewStore owns upvote counts for records. The aggregation pipeline
// consumes it read-only; writes come from the CLI and any future review
// surface.
type ReviewStore interface {
	// UpvoteCount returns the current count for a record ID.
	// Unknown IDs return 0, not an error.
	UpvoteCount(ctx context.Context, id string) (int, error)

	// Upvote increments the count for a record ID, creating the row when
	// missing.
	Upvote(ctx context.Context, id string) error
}
