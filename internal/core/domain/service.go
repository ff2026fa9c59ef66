package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Source identifies which backing system produced a record.
// Merge precedence between overlapping records is decided by source.
type Source string

const (
	// SourceLocalStore is the persisted user-submission store.
	SourceLocalStore Source = "local-store"

	// SourceSpreadsheetFeed is the periodically synced sheet of vetted
	// organisations.
	SourceSpreadsheetFeed Source = "spreadsheet-feed"

	// SourcePlacesAPI is the live third-party places search.
	SourcePlacesAPI Source = "places-api"
)

// Priority returns the merge precedence of the source. Lower is more
// authoritative: a record from a lower-priority source is kept over an
// overlapping record from a higher one.
func (s Source) Priority() int {
	switch s {
	case SourceLocalStore:
		return 0
	case SourceSpreadsheetFeed:
		return 1
	case SourcePlacesAPI:
		return 2
	default:
		return 3
	}
}

// Coordinate is a (latitude, longitude) pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether the pair is within the WGS84 coordinate ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Record is the canonical service entity flowing through the aggregation
// pipeline. Adapters construct a fresh Record per fetch; once handed to the
// pipeline it is treated as immutable.
type Record struct {
	// ID is a stable identifier. Spreadsheet records hash the organisation
	// name; places records derive from the provider's place reference;
	// local records use the store's own key.
	ID string

	// Name is the display name. Required.
	Name string

	// ServiceTypes are category tags. Matching ignores order and case;
	// insertion order is preserved for display.
	ServiceTypes []string

	// ExtraFilters, Demographic and Languages are optional descriptive tags.
	ExtraFilters []string
	Demographic  string
	Languages    []string

	// Addresses lists free-text site addresses; an organisation may operate
	// several locations.
	Addresses []string

	// Coordinates is index-aligned with Addresses where both are populated.
	// It may be shorter when geocoding failed for some segments. Empty means
	// the location is unknown and the record never passes distance filtering.
	Coordinates []Coordinate

	// Neighborhoods lists the neighbourhoods the organisation serves.
	Neighborhoods []string

	Website string
	Summary string
	Hours   string
	Phone   string

	// GoogleLink points at the provider's listing when the record came from
	// the places search.
	GoogleLink string

	// Source records provenance, required for audit and merge precedence.
	Source Source

	// Upvotes is owned by the companion review store and consumed read-only
	// here. Never negative.
	Upvotes int
}

// Validate reports whether the record can enter the pipeline. Records with
// an empty ID or name, or with an out-of-range coordinate, are rejected at
// the adapter boundary with ErrMalformedRecord.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
		return ErrMalformedRecord
	}
	for _, c := range r.Coordinates {
		if !c.Valid() {
			return ErrMalformedRecord
		}
	}
	return nil
}

// PrimaryCoordinate returns the record's first location. ok is false when
// the location is unknown.
func (r *Record) PrimaryCoordinate() (Coordinate, bool) {
	if len(r.Coordinates) == 0 {
		return Coordinate{}, false
	}
	return r.Coordinates[0], true
}

// HashName derives the stable identifier used for spreadsheet records:
// a hex-encoded SHA-256 of the organisation name. Deterministic across
// repeated fetches of the same row.
func HashName(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
