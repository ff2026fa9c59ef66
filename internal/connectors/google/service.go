package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewSheetsService creates a Sheets API service authenticated with a
// service-account key file, the same out-of-band credential the sheet is
// shared with. Read-only scope: this module never writes the sheet.
func NewSheetsService(ctx context.Context, credentialsPath string) (*sheets.Service, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read service account key: %w", err)
	}

	conf, err := oauthgoogle.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	return sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
}

// NewSheetsServiceWithTokenSource creates a Sheets API service from an
// existing token source. Used by tests and callers that manage credentials
// themselves.
func NewSheetsServiceWithTokenSource(ctx context.Context, ts oauth2.TokenSource) (*sheets.Service, error) {
	return sheets.NewService(ctx, option.WithTokenSource(ts))
}
