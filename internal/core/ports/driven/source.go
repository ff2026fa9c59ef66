package driven

import (
	"context"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// ServiceSource produces service records from one backing system.
// Each source variant (local store, spreadsheet feed, places search)
// implements this interface.
//
// Fetch returns the records relevant to the query. Sources do not apply the
// distance or category filter themselves; filtering is centralised in the
// aggregation pipeline. A source with nothing to report returns an empty
// slice and a nil error. Transport and auth failures wrap
// domain.ErrSourceUnavailable (or domain.ErrStoreUnavailable for local
// persistence).
type ServiceSource interface {
	// Name identifies the source in logs and failure reports.
	Name() string

	// Fetch returns freshly constructed records. Implementations must not
	// retain or mutate the returned slice.
	Fetch(ctx context.Context, q domain.Query) ([]domain.Record, error)
}
