// Package importer drives bulk ingestion over a set of shell-glob patterns,
// running each matched file through a register.Pipeline behind a bounded
// worker pool and streaming one ImportResult per file back to the caller.
//
// Grounded on spec.md §4.7 and, for the worker-pool shape, on the same
// jobs/results/sync.WaitGroup pattern used by internal/remove (itself
// grounded on the teacher's dicom/directory_writer.go concurrent write
// loop): spawn a fixed set of workers, feed them from a closed jobs
// channel, and close the results channel once every worker has exited.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/internal/identity"
	"github.com/codeninja55/rudicom/internal/register"
)

// Mode selects whether imported files are left in place or rewritten
// beneath the file store's root.
type Mode int

const (
	// Import leaves each matched file at its source path; the catalog
	// records it with owned=false.
	Import Mode = iota
	// Store rewrites each matched file's bytes at a pattern-derived path
	// beneath the file store's root; the catalog records it as owned.
	Store
)

// Kind discriminates the variants of ImportResult.
type Kind int

const (
	Registered Kind = iota
	Existed
	ExistedConflict
	Err
)

// ImportResult is one file's outcome from a Run. Only the fields relevant
// to Kind are populated.
type ImportResult struct {
	Kind Kind
	Path string

	// Registered, Existed, ExistedConflict
	InstanceID identity.RecordID

	// ExistedConflict only
	IncomingMD5 string

	// Err only
	Cause error
}

// Options configures a Run.
type Options struct {
	Patterns []string
	Mode     Mode
	// Workers bounds concurrency; 0 defaults to 32, spec.md's documented
	// default worker cap.
	Workers int
	// EchoImported, when false, drops Registered results from the stream.
	EchoImported bool
	// EchoExisting, when false, drops Existed results from the stream.
	// ExistedConflict and Err are always emitted.
	EchoExisting bool
}

const defaultWorkers = 32

// Run expands opts.Patterns, then imports every matched file concurrently
// through pipeline, streaming one ImportResult per file (subject to the
// Echo* filters) on the returned channel. The channel is closed once every
// file has been processed. Run returns an error immediately, without
// starting any workers, if the glob patterns match nothing.
func Run(pipeline *register.Pipeline, opts Options) (<-chan ImportResult, error) {
	paths, err := expandGlobs(opts.Patterns)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string, len(paths))
	raw := make(chan ImportResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				raw <- importOne(pipeline, opts.Mode, path)
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(raw)
	}()

	out := make(chan ImportResult, workers)
	go func() {
		defer close(out)
		for r := range raw {
			if r.Kind == Registered && !opts.EchoImported {
				continue
			}
			if r.Kind == Existed && !opts.EchoExisting {
				continue
			}
			out <- r
		}
	}()

	return out, nil
}

func importOne(pipeline *register.Pipeline, mode Mode, path string) ImportResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Kind: Err, Path: path, Cause: fmt.Errorf("read %s: %w", path, err)}
	}

	ds, err := dicom.ParseReader(bytes.NewReader(raw))
	if err != nil {
		return ImportResult{Kind: Err, Path: path, Cause: fmt.Errorf("parse %s: %w", path, err)}
	}

	var res register.Result
	if mode == Store {
		res, err = pipeline.Register(ds, raw, nil)
	} else {
		res, err = pipeline.RegisterImported(ds, raw, path, nil)
	}

	if err != nil {
		var md5c *register.Md5ConflictError
		if errors.As(err, &md5c) {
			return ImportResult{
				Kind:        ExistedConflict,
				Path:        path,
				InstanceID:  md5c.ExistingID,
				IncomingMD5: md5c.IncomingMD5,
			}
		}
		return ImportResult{Kind: Err, Path: path, Cause: err}
	}

	if res.Outcome == register.AlreadyStored {
		return ImportResult{Kind: Existed, Path: path, InstanceID: res.InstanceID}
	}
	return ImportResult{Kind: Registered, Path: path, InstanceID: res.InstanceID}
}
