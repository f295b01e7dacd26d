package catalog

import "errors"

// ErrNotFound is returned by lookups when no row exists for the given id.
var ErrNotFound = errors.New("catalog: not found")

// ErrAlreadyExists is returned by Insert* when a row already exists for the
// given id — the duplicate-key outcome spec.md §4.4 requires the
// Registration Pipeline to be able to distinguish from a fresh insert.
var ErrAlreadyExists = errors.New("catalog: already exists")
