package driving

import (
	"context"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// SubmissionService accepts community-submitted service records and
// their upvotes.
type SubmissionService interface {
	// Submit persists a user-submitted record, assigning an ID when the
	// caller left it empty.
	Submit(ctx context.Context, rec *domain.Record) error

	// Upvote increments the review count for a record ID.
	Upvote(ctx context.Context, id string) error
}
