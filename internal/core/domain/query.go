package domain

import "strings"

// MetersPerMile converts the mile radii accepted at the CLI boundary into
// the metres the pipeline works in.
const MetersPerMile = 1609.34

// Query describes one aggregation request: a service category and a
// geographic point with a search radius.
type Query struct {
	// Category is the service type to look for, e.g. "Food" or
	// "Mental Health Services". Empty or "all" matches every category.
	Category string

	// Lat and Lng are the query point in decimal degrees.
	Lat float64
	Lng float64

	// RadiusMeters bounds the distance filter.
	RadiusMeters float64
}

// Wildcard reports whether the query matches all service categories.
func (q Query) Wildcard() bool {
	c := strings.TrimSpace(strings.ToLower(q.Category))
	return c == "" || c == "all"
}

// Validate rejects queries with an out-of-range point or a non-positive
// radius.
func (q Query) Validate() error {
	if !(Coordinate{Lat: q.Lat, Lon: q.Lng}).Valid() {
		return ErrInvalidInput
	}
	if q.RadiusMeters <= 0 {
		return ErrInvalidInput
	}
	return nil
}
