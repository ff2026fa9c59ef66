package cli

import (
	"context"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// mockAggregateService returns canned records and captures the last query.
type mockAggregateService struct {
	records []domain.Record
	err     error
	lastQ   domain.Query
}

func (m *mockAggregateService) Aggregate(_ context.Context, q domain.Query) ([]domain.Record, error) {
	m.lastQ = q
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

// mockSubmissionService records submissions and upvotes.
type mockSubmissionService struct {
	submitted []domain.Record
	upvoted   []string
	err       error
}

func (m *mockSubmissionService) Submit(_ context.Context, rec *domain.Record) error {
	if m.err != nil {
		return m.err
	}
	if rec.ID == "" {
		rec.ID = "generated-id"
	}
	m.submitted = append(m.submitted, *rec)
	return nil
}

func (m *mockSubmissionService) Upvote(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.upvoted = append(m.upvoted, id)
	return nil
}

// setupTestServices swaps the package services for mocks and returns a
// cleanup restoring the originals.
func setupTestServices() (*mockAggregateService, *mockSubmissionService, func()) {
	oldAggregate := aggregateService
	oldSubmission := submissionService

	agg := &mockAggregateService{
		records: []domain.Record{
			{
				ID:           "rec-1",
				Name:         "Community Food Pantry",
				ServiceTypes: []string{"food"},
				Addresses:    []string{"12 Main St, Boston, MA"},
				Coordinates:  []domain.Coordinate{{Lat: 42.36, Lon: -71.05}},
				Phone:        "617-555-0100",
				Source:       domain.SourceLocalStore,
				Upvotes:      3,
			},
			{
				ID:     "rec-2",
				Name:   "Housing Help Center",
				Source: domain.SourceSpreadsheetFeed,
			},
		},
	}
	sub := &mockSubmissionService{}

	aggregateService = agg
	submissionService = sub

	return agg, sub, func() {
		aggregateService = oldAggregate
		submissionService = oldSubmission
	}
}
