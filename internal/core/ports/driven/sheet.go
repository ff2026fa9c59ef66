package driven

import "context"

// SheetReader reads all rows from the vetted-organisation spreadsheet.
// Authentication happens out of band when the adapter is constructed.
type SheetReader interface {
	// ReadRows returns every data row keyed by column header. An empty
	// sheet returns an empty slice and a nil error; auth and transport
	// failures wrap domain.ErrSourceUnavailable.
	ReadRows(ctx context.Context, sheetID string) ([]map[string]string, error)
}
