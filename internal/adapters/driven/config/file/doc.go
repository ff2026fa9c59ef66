// Package file provides a TOML file-based implementation of the
// configuration port. Settings live in ~/.aidfinder/config.toml by
// default; nested tables are flattened into dot-notation keys
// (e.g. sheets.id, google.api_key).
package file
