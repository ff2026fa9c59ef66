package services

import (
	"strings"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/logger"
)

// Filter applies the distance and category predicates to a merged record
// set, preserving order. A record passes only when both predicates hold.
func Filter(records []domain.Record, q domain.Query) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if !withinRadius(rec, q) {
			continue
		}
		if !matchesCategory(rec, q) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// withinRadius reports whether at least one of the record's locations lies
// within the query radius. Records with no known location fail closed.
func withinRadius(rec domain.Record, q domain.Query) bool {
	if len(rec.Coordinates) == 0 {
		logger.Debug("filter: %q has no location, excluded from distance filter", rec.Name)
		return false
	}
	for _, c := range rec.Coordinates {
		if domain.DistanceMeters(q.Lat, q.Lng, c.Lat, c.Lon) <= q.RadiusMeters {
			return true
		}
	}
	return false
}

// matchesCategory reports whether the query category appears among the
// record's service types, case-insensitively. Wildcard queries pass
// everything. As a best-effort fallback for sources that do not tag types
// reliably, the category is also matched as a substring of the name.
func matchesCategory(rec domain.Record, q domain.Query) bool {
	if q.Wildcard() {
		return true
	}

	want := strings.ToLower(strings.TrimSpace(q.Category))
	for _, st := range rec.ServiceTypes {
		if strings.Contains(strings.ToLower(st), want) {
			return true
		}
	}

	return strings.Contains(strings.ToLower(rec.Name), want)
}
