package file

import "time"

// Well-known configuration keys. Nested TOML tables flatten to these
// dot-notation names, so a config file can write either
//
//	[sheets]
//	id = "..."
//
// or sheets.id = "..." at the top level.
const (
	// KeySheetID is the spreadsheet ID of the vetted organization feed.
	KeySheetID = "sheets.id"

	// KeyCredentialsPath points at the service-account JSON used for the
	// Sheets API.
	KeyCredentialsPath = "sheets.credentials"

	// KeyGoogleAPIKey is the API key for the Geocoding and Places APIs.
	KeyGoogleAPIKey = "google.api_key"

	// KeyCacheTTLSeconds overrides the sheet cache lifetime, in seconds.
	KeyCacheTTLSeconds = "cache.ttl_seconds"

	// KeyDataDir overrides the directory holding the local SQLite store.
	KeyDataDir = "storage.data_dir"
)

// CacheTTL resolves the configured sheet cache lifetime, falling back to
// fallback when unset or non-positive.
func (s *ConfigStore) CacheTTL(fallback time.Duration) time.Duration {
	secs := s.GetInt(KeyCacheTTLSeconds)
	if secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
