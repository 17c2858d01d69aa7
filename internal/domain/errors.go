package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// line does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. a blank line name).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when two appends race for the same position on a
// line. The caller may retry.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
