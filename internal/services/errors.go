package services

import "errors"

// Sentinel errors for the conditions the handlers translate into
// user-facing responses. Anything else coming out of a service is an
// unexpected datastore failure and surfaces as a 500.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFoundOrForbidden deliberately covers both "no such record"
	// and "not your record" so the API never leaks whether an id exists.
	ErrNotFoundOrForbidden = errors.New("not found")

	ErrValidation = errors.New("validation failed")
)
