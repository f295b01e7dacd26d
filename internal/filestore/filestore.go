// Package filestore hashes, writes, reads, and removes DICOM payloads at
// pattern-derived paths beneath a configured storage root.
//
// Grounded on the teacher's dicom.WriteFileWithOptions/writeFileAtomic
// (dicom/writer.go), which already serializes a DataSet to the Part 10 wire
// format and writes it to disk — this package adds the piece the teacher
// never needed: true exclusive-create semantics (O_CREATE|O_EXCL) so two
// concurrent registrations deriving the same path race safely instead of one
// silently clobbering the other, and single-pass md5 computation over the
// exact bytes written, via the new dicom.EncodeFile export.
package filestore

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/codeninja55/rudicom/dicom"
)

// ErrPathConflict is returned by Write when the derived path already exists.
// The registration pipeline maps this to DataConflict or AlreadyStored by
// comparing md5s of the incoming and on-disk bytes.
var ErrPathConflict = errors.New("filestore: path already exists")

// Store writes and reads DICOM payloads beneath Root, a directory that must
// be absolute and already exist.
type Store struct {
	Root string
}

// New returns a Store rooted at root. root must be absolute; New does not
// itself verify the directory exists, since startup validation is the
// config loader's responsibility (see internal/config).
func New(root string) (*Store, error) {
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("filestore: storage root %q must be absolute", root)
	}
	return &Store{Root: filepath.Clean(root)}, nil
}

// ResolvePattern derives a path from ds and pattern, then joins it beneath
// the storage root if it is not already absolute.
func (s *Store) ResolvePattern(ds *dicom.DataSet, pattern string) (string, error) {
	rel, err := DerivePath(ds, pattern)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}
	return filepath.Join(s.Root, rel), nil
}

// WriteResult reports the outcome of a successful Write.
type WriteResult struct {
	Path string
	MD5  string
	Size int64
}

// Write serializes ds to the Part 10 wire format and writes it to path,
// computing md5 over the bytes in the same pass. path is created with
// exclusive-create semantics: if it already exists, Write returns
// ErrPathConflict without modifying it. Parent directories are created as
// needed.
func (s *Store) Write(path string, ds *dicom.DataSet, opts dicom.WriteOptions) (WriteResult, error) {
	data, err := dicom.EncodeFile(ds, opts)
	if err != nil {
		return WriteResult{}, fmt.Errorf("filestore: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return WriteResult{}, fmt.Errorf("filestore: mkdir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return WriteResult{}, ErrPathConflict
		}
		return WriteResult{}, fmt.Errorf("filestore: open %s: %w", path, err)
	}
	defer f.Close()

	sum := md5.Sum(data)
	if _, err := f.Write(data); err != nil {
		return WriteResult{}, fmt.Errorf("filestore: write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return WriteResult{}, fmt.Errorf("filestore: sync %s: %w", path, err)
	}

	return WriteResult{Path: path, MD5: hex.EncodeToString(sum[:]), Size: int64(len(data))}, nil
}

// ReadResult reports a file's parsed dataset, md5, and size in bytes.
type ReadResult struct {
	DataSet *dicom.DataSet
	MD5     string
	Size    int64
}

// Read loads path fully into memory, computes its md5, and parses it as a
// DICOM object.
func (s *Store) Read(path string) (ReadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadResult{}, fmt.Errorf("filestore: read %s: %w", path, err)
	}

	ds, err := dicom.ParseReader(bytes.NewReader(data))
	if err != nil {
		return ReadResult{}, fmt.Errorf("filestore: parse %s: %w", path, err)
	}

	sum := md5.Sum(data)
	return ReadResult{DataSet: ds, MD5: hex.EncodeToString(sum[:]), Size: int64(len(data))}, nil
}

// MD5 streams path through md5 without parsing it, for Verify.
func (s *Store) MD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("filestore: open %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("filestore: hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Remove deletes path and prunes any ancestor directories left empty, up to
// but not including the storage root.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: remove %s: %w", path, err)
	}
	s.pruneEmptyAncestors(filepath.Dir(path))
	return nil
}

// pruneEmptyAncestors walks upward from dir, removing each directory that is
// empty, stopping at (and never removing) the storage root or anything
// outside it.
func (s *Store) pruneEmptyAncestors(dir string) {
	root := filepath.Clean(s.Root)
	for {
		dir = filepath.Clean(dir)
		if dir == root || !strings.HasPrefix(dir, root+string(filepath.Separator)) {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
