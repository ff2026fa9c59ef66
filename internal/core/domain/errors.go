package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedRecord indicates a source returned data that cannot be
	// coerced into a service record. The single record is dropped, never
	// the whole batch.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrSourceUnavailable indicates a transport or auth failure reaching
	// an external source. Tolerated per source; degrades result
	// completeness.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrStoreUnavailable indicates the local persistence layer cannot be
	// reached. Same tolerance as ErrSourceUnavailable.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrAllSourcesFailed indicates every configured source failed.
	// This is the only condition the aggregation pipeline surfaces as a
	// hard failure to its caller.
	ErrAllSourcesFailed = errors.New("all sources failed")
)
