package services

import (
	"sort"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// coordKey is the exact-match identity used for duplicate detection.
// Comparison is on the raw float representation the source handed us; no
// distance tolerance is applied, since none of the sources agree on a safe
// epsilon. See the filter stage for distance semantics.
type coordKey struct {
	lat float64
	lon float64
}

// Deduplicate merges records from multiple sources into one set with no
// duplicate physical locations.
//
// Candidates are considered in fixed source-priority order (local store,
// then spreadsheet feed, then places search), preserving arrival order
// within a source. Earlier sources are authoritative: a later candidate is
// dropped when its primary coordinate exactly matches an already accepted
// record's primary coordinate. Records without an identifier are dropped
// outright. Records without any coordinate cannot collide and are kept.
//
// Output order is priority-then-arrival; distance sorting, if wanted, is
// the caller's concern.
func Deduplicate(records []domain.Record) []domain.Record {
	// Stable sort keeps arrival order within each source.
	ordered := make([]domain.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Source.Priority() < ordered[j].Source.Priority()
	})

	seen := make(map[coordKey]domain.Source)
	out := make([]domain.Record, 0, len(ordered))

	for _, rec := range ordered {
		if rec.ID == "" {
			logger.Warn("dedup: dropping unidentified record %q from %s", rec.Name, rec.Source)
			continue
		}

		primary, ok := rec.PrimaryCoordinate()
		if !ok {
			out = append(out, rec)
			continue
		}

		key := coordKey{lat: primary.Lat, lon: primary.Lon}
		if kept, dup := seen[key]; dup {
			logger.Debug("dedup: %q from %s collides with accepted %s record at (%v, %v)",
				rec.Name, rec.Source, kept, primary.Lat, primary.Lon)
			continue
		}

		seen[key] = rec.Source
		out = append(out, rec)
	}

	return out
}
