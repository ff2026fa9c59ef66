// Package memory provides in-memory implementations of the persistence
// ports, used by tests and by CLI runs without a configured database.
package memory

import (
	"context"
	"sync"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// Ensure ServiceStore implements the interface.
var _ driven.ServiceStore = (*ServiceStore)(nil)

// ServiceStore is an in-memory implementation of driven.ServiceStore.
type ServiceStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
	order   []string
}

// NewServiceStore creates a new in-memory service store.
func NewServiceStore() *ServiceStore {
	return &ServiceStore{records: make(map[string]domain.Record)}
}

// ListAll returns every stored record in insertion order.
func (s *ServiceStore) ListAll(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

// Save stores or updates a record.
func (s *ServiceStore) Save(_ context.Context, rec *domain.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[rec.ID]; !exists {
		s.order = append(s.order, rec.ID)
	}
	s.records[rec.ID] = *rec
	return nil
}
