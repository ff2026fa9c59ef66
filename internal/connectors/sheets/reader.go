package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/urban-refuge/aidfinder/internal/connectors/google"
	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.SheetReader = (*Reader)(nil)

// readRange covers the first worksheet without naming it; the organisation
// sheet keeps its data on sheet one.
const readRange = "A:ZZ"

// Reader reads rows through the Google Sheets API.
type Reader struct {
	svc     *sheets.Service
	limiter *google.RateLimiter
}

// NewReader creates a sheet reader over an authenticated Sheets service.
func NewReader(svc *sheets.Service) *Reader {
	return &Reader{
		svc:     svc,
		limiter: google.NewRateLimiter(google.ServiceSheets),
	}
}

// ReadRows implements driven.SheetReader. The first row supplies the column
// headers; every following row becomes a header-keyed map. Cells beyond a
// row's length read as empty, matching how the sheet API trims trailing
// blanks.
func (r *Reader) ReadRows(ctx context.Context, sheetID string) ([]map[string]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := r.svc.Spreadsheets.Values.Get(sheetID, readRange).Context(ctx).Do()
	if err != nil {
		if google.IsRateLimited(err) {
			r.limiter.RecordRateLimitError(0)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, google.WrapError(err))
	}

	if len(resp.Values) < 2 {
		// Header only, or nothing at all: an empty sheet is not an error.
		return []map[string]string{}, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, h := range resp.Values[0] {
		headers[i] = fmt.Sprint(h)
	}

	rows := make([]map[string]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(raw) {
				row[header] = fmt.Sprint(raw[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
