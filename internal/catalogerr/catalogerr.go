// Package catalogerr centralizes the few error shapes the HTTP layer needs
// to distinguish from one another, per spec.md §7's error handling design:
// every other layer only wraps and returns (via fmt.Errorf's %w, as
// internal/catalog, internal/register, internal/filestore, and
// internal/remove already do); only the HTTP boundary inspects a leaf
// cause to pick a status code and a log level.
package catalogerr

import (
	"errors"
	"fmt"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/identity"
	"github.com/codeninja55/rudicom/internal/importer"
	"github.com/codeninja55/rudicom/internal/register"
)

// IdNotFoundError annotates catalog.ErrNotFound with the id that was
// looked up, so the HTTP layer's 404 body and debug log line can name it.
type IdNotFoundError struct {
	ID identity.RecordID
}

func (e *IdNotFoundError) Error() string {
	return fmt.Sprintf("catalogerr: %s not found", e.ID)
}

// Unwrap lets errors.Is(err, catalog.ErrNotFound) see through an
// IdNotFoundError the same way it sees through catalog's own errors.
func (e *IdNotFoundError) Unwrap() error {
	return catalog.ErrNotFound
}

// NotFound wraps catalog.ErrNotFound with the id that produced it.
func NotFound(id identity.RecordID) error {
	return &IdNotFoundError{ID: id}
}

// ChecksumError reports that an instance's on-disk md5 no longer matches
// its catalog-recorded md5 — spec.md §7's ChecksumErr{checksum, file}.
type ChecksumError struct {
	InstanceID identity.RecordID
	Expected   string
	Actual     string
	File       string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("catalogerr: checksum mismatch for %s at %s: expected %s, got %s", e.InstanceID, e.File, e.Expected, e.Actual)
}

// StatusCode maps a leaf error to the HTTP status spec.md §6's API
// contracts assign it. Unrecognized errors map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return 404
	case errors.Is(err, catalog.ErrAlreadyExists):
		return 409
	case errors.Is(err, filestore.ErrPathConflict):
		return 409
	case isConflict(err):
		return 409
	case isNoGlobMatches(err):
		return 404
	default:
		return 500
	}
}

func isConflict(err error) bool {
	var dataConflict *register.DataConflictError
	var md5Conflict *register.Md5ConflictError
	return errors.As(err, &dataConflict) || errors.As(err, &md5Conflict)
}

func isNoGlobMatches(err error) bool {
	var noMatches *importer.ErrNoMatches
	return errors.As(err, &noMatches)
}

// LogLevel reports the level spec.md §7 assigns an error at the HTTP
// boundary: IdNotFound logs at debug, everything else at error.
func LogLevel(err error) string {
	var notFound *IdNotFoundError
	if errors.As(err, &notFound) {
		return "debug"
	}
	return "error"
}
