package memory

import (
	"context"
	"sync"

	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// Ensure ReviewStore implements the interface.
var _ driven.ReviewStore = (*ReviewStore)(nil)

// ReviewStore is an in-memory implementation of driven.ReviewStore.
type ReviewStore struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewReviewStore creates a new in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{counts: make(map[string]int)}
}

// UpvoteCount returns the current count for a record ID. Unknown IDs
// report zero.
func (s *ReviewStore) UpvoteCount(_ context.Context, id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[id], nil
}

// Upvote increments the count for a record ID.
func (s *ReviewStore) Upvote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[id]++
	return nil
}
