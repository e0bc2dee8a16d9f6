package core

import "errors"

// Predefined errors returned by formatting operations.
var (
	// ErrMissingParameter is returned when a named template references a
	// parameter that is absent from the parameter map. The returned error
	// includes the unresolved marker text.
	ErrMissingParameter = errors.New("missing parameter")
)
