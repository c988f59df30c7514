package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (e.g. the study word list has been exhausted).
// Handlers should map this to HTTP 404 or a domain-specific "finished" body.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a negative progress index).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateFormat is returned by the date normalizer when a token is
// neither a 10-character slashed date nor a parseable YYYYMMDD string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrConfiguration is returned by the facility resolver when the lookup
// service credentials are missing. The check runs before any network call,
// so a missing credential is never reported as a network failure.
var ErrConfiguration = errors.New("configuration error")

// ErrLookupFailed is returned by the facility resolver when the external
// lookup call fails in transit or the response is missing the expected
// nested fields. The underlying cause is wrapped alongside it.
var ErrLookupFailed = errors.New("facility lookup failed")

// ErrNameMismatch is returned by the facility resolver when the name
// returned by the lookup service does not exactly match the expected name
// after trimming edge whitespace. The comparison is case-sensitive.
var ErrNameMismatch = errors.New("facility name mismatch")
