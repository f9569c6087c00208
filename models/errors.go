package models

import "errors"

// Error taxonomy for upstream-facing failures. Handlers map these onto HTTP
// status codes with errors.Is; services wrap them with request context.
var (
	// ErrUnknownCategory means a category key is not in the configured table.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUpstreamAuth means access-token acquisition failed. Fatal to any
	// request needing upstream data.
	ErrUpstreamAuth = errors.New("upstream authentication failed")

	// ErrUpstreamUnavailable means a required upstream call failed. Unlike
	// per-broadcaster schedule lookups, this is never tolerated.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNotFound means the referenced resource does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a request or upstream record failed shape-level
	// validation (missing parameter, malformed timestamp).
	ErrValidation = errors.New("validation error")
)
