package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driving"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

var _ driving.SubmissionService = (*Submission)(nil)

// Submission handles community-submitted records. Submitted records go to
// the local store only; they reach search results through the aggregation
// pipeline like any other source.
type Submission struct {
	store   driven.ServiceStore
	reviews driven.ReviewStore
}

// NewSubmission creates a submission service over the given stores.
func NewSubmission(store driven.ServiceStore, reviews driven.ReviewStore) *Submission {
	return &Submission{store: store, reviews: reviews}
}

// Submit persists a user-submitted record. An empty ID gets a generated
// UUID; the source is always forced to the local store.
func (s *Submission) Submit(ctx context.Context, rec *domain.Record) error {
	if rec == nil {
		return fmt.Errorf("submit: nil record: %w", domain.ErrInvalidInput)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Source = domain.SourceLocalStore

	if err := rec.Validate(); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	logger.Info("saved submission %s (%s)", rec.ID, rec.Name)
	return nil
}

// Upvote increments the review count for a record ID.
func (s *Submission) Upvote(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("upvote: empty record id: %w", domain.ErrInvalidInput)
	}
	if err := s.reviews.Upvote(ctx, id); err != nil {
		return fmt.Errorf("upvote: %w", err)
	}
	return nil
}
