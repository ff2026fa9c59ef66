package sheets

import (
	"strings"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
)

// Column headers as they appear in the organisation sheet. The sheet is
// maintained by hand, so the verbose header text is part of the contract.
const (
	colName        = "Name of Organization"
	colServiceType = "Service Type"
	colExtras      = "Extra Filters"
	colDemographic = "Who are these services for? (refugees, asylees, TPS, parolees, any status, etc.)"
	colWebsite     = "Website"
	colSummary     = "Summary of Services"
	colAddress     = "Address"
	colNeighborhood = "Neighborhood"
	colHours       = "Hours"
	colPhone       = "Phone Number (for public to contact)"
	colLanguages   = "Services offered in these languages"
)

// minAddressLen guards against stray ";" leftovers in the address cell;
// anything shorter cannot be a geocodable address.
const minAddressLen = 4

// parseRow converts one sheet row into a record, without coordinates.
// Geocoding happens in the source so it can run concurrently across rows.
// Returns domain.ErrMalformedRecord for rows missing an organisation name.
func parseRow(row map[string]string) (domain.Record, error) {
	name := strings.TrimSpace(row[colName])
	if name == "" {
		return domain.Record{}, domain.ErrMalformedRecord
	}

	rec := domain.Record{
		ID:            domain.HashName(name),
		Name:          name,
		ServiceTypes:  splitCell(row[colServiceType]),
		ExtraFilters:  splitCell(row[colExtras]),
		Demographic:   strings.TrimSpace(row[colDemographic]),
		Website:       strings.TrimSpace(row[colWebsite]),
		Summary:       strings.TrimSpace(row[colSummary]),
		Addresses:     splitAddresses(row[colAddress]),
		Neighborhoods: splitCell(row[colNeighborhood]),
		Hours:         strings.TrimSpace(row[colHours]),
		Phone:         strings.TrimSpace(row[colPhone]),
		Languages:     splitCell(row[colLanguages]),
		Source:        domain.SourceSpreadsheetFeed,
	}

	return rec, nil
}

// splitAddresses splits the semicolon-delimited address cell into one entry
// per site.
func splitAddresses(cell string) []string {
	var out []string
	for _, seg := range strings.Split(cell, ";") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// splitCell normalises a comma-delimited sheet cell into a tag slice.
// Freeform cells arrive in every shape the sheet's editors produce; the
// pipeline only ever sees slices.
func splitCell(cell string) []string {
	var out []string
	for _, item := range strings.Split(cell, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// geocodable reports whether an address segment is worth sending to the
// geocoder.
func geocodable(address string) bool {
	return len(address) >= minAddressLen
}
