package register

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/coerce"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/identity"
)

// Outcome distinguishes the two non-error results of Register.
type Outcome int

const (
	// Stored means a new instance row and file were created.
	Stored Outcome = iota
	// AlreadyStored means the instance was already registered with
	// semantically identical content; nothing was changed.
	AlreadyStored
)

// Result is the successful outcome of Register.
type Result struct {
	Outcome    Outcome
	InstanceID identity.RecordID
}

// DataConflictError is returned when the incoming object's UIDs match an
// existing catalog entry but its configured tags don't — a semantic
// conflict the pipeline refuses to silently overwrite.
type DataConflictError struct {
	Level    string // "study", "series", or "instance"
	Existing any    // *catalog.Study, *catalog.Series, or *catalog.Instance
}

func (e *DataConflictError) Error() string {
	return fmt.Sprintf("register: data conflict at %s level: incoming object differs from stored entry", e.Level)
}

// Md5ConflictError is returned when the incoming object's UIDs and
// configured tags match an existing instance exactly, but its file bytes
// don't: the same logical object was re-registered with different content.
type Md5ConflictError struct {
	ExistingID  identity.RecordID
	ExistingMD5 string
	IncomingMD5 string
}

func (e *Md5ConflictError) Error() string {
	return fmt.Sprintf("register: md5 conflict on %s: stored %s, incoming %s", e.ExistingID, e.ExistingMD5, e.IncomingMD5)
}

// Pipeline wires the catalog and file store together behind the six-step
// registration algorithm.
type Pipeline struct {
	Catalog *catalog.Catalog
	Store   *filestore.Store
	Tags    TagSet
	Pattern string
}

// New returns a Pipeline over the given catalog, file store, configured tag
// set, and filename pattern.
func New(c *catalog.Catalog, s *filestore.Store, tags TagSet, pattern string) *Pipeline {
	return &Pipeline{Catalog: c, Store: s, Tags: tags, Pattern: pattern}
}

// Register runs the extract → hash → identify → reconcile → insert →
// persist algorithm in "store" mode: ds is serialized to a pattern-derived
// path beneath the file store's root and the catalog records it as owned.
// raw is the object's original undecoded bytes; addMeta is merged into the
// instance row's tag map alongside the configured instance tags.
func (p *Pipeline) Register(ds *dicom.DataSet, raw []byte, addMeta map[string]coerce.Value) (Result, error) {
	return p.register(ds, raw, addMeta, func(guard *Guard, instanceID identity.RecordID) (Result, error) {
		path, err := p.Store.ResolvePattern(ds, p.Pattern)
		if err != nil {
			return Result{}, fmt.Errorf("register: derive path: %w", err)
		}

		wr, err := p.Store.Write(path, ds, dicom.WriteOptions{})
		if err != nil {
			if errors.Is(err, filestore.ErrPathConflict) {
				// Two concurrent registrations derived the same path; the other
				// writer won the exclusive-create race. Compare bytes to decide
				// whether this is actually the same content (benign) or a real
				// conflict.
				res, recErr := p.reconcilePathConflict(ds, path, instanceID)
				if recErr != nil {
					return Result{}, recErr
				}
				guard.Dismiss()
				return res, nil
			}
			return Result{}, fmt.Errorf("register: write file: %w", err)
		}

		file := catalog.FileDescriptor{Path: wr.Path, Owned: true, MD5: wr.MD5}
		if err := p.Catalog.UpdateInstanceFile(instanceID, file); err != nil {
			return Result{}, fmt.Errorf("register: record file descriptor: %w", err)
		}
		guard.Dismiss()
		return Result{Outcome: Stored, InstanceID: instanceID}, nil
	})
}

// RegisterImported runs the same algorithm in "import" mode: the object's
// bytes stay at sourcePath — nothing is written beneath the file store's
// root — and the catalog records the instance as not owned. raw is the
// file's full original bytes, already read from sourcePath.
func (p *Pipeline) RegisterImported(ds *dicom.DataSet, raw []byte, sourcePath string, addMeta map[string]coerce.Value) (Result, error) {
	return p.register(ds, raw, addMeta, func(guard *Guard, instanceID identity.RecordID) (Result, error) {
		sum := md5.Sum(raw)
		file := catalog.FileDescriptor{Path: sourcePath, Owned: false, MD5: hex.EncodeToString(sum[:])}
		if err := p.Catalog.UpdateInstanceFile(instanceID, file); err != nil {
			return Result{}, fmt.Errorf("register: record file descriptor: %w", err)
		}
		guard.Dismiss()
		return Result{Outcome: Stored, InstanceID: instanceID}, nil
	})
}

// register implements steps 1-5 common to both Register and
// RegisterImported. persist implements step 6 under the rollback guard;
// it must call guard.Dismiss() itself once the instance's file descriptor
// is durably recorded, so that a panic or early return rolls the insert
// back.
func (p *Pipeline) register(ds *dicom.DataSet, raw []byte, addMeta map[string]coerce.Value, persist func(*Guard, identity.RecordID) (Result, error)) (Result, error) {
	studyUID, err := extractUID(ds, "StudyInstanceUID")
	if err != nil {
		return Result{}, err
	}
	seriesUID, err := extractUID(ds, "SeriesInstanceUID")
	if err != nil {
		return Result{}, err
	}
	instanceUID, err := extractUID(ds, "SOPInstanceUID")
	if err != nil {
		return Result{}, err
	}

	studyID, err := identity.FromStudy(studyUID)
	if err != nil {
		return Result{}, err
	}
	seriesID, err := identity.FromSeries(seriesUID, studyUID)
	if err != nil {
		return Result{}, err
	}
	instanceID, err := identity.FromInstance(instanceUID, seriesUID, studyUID)
	if err != nil {
		return Result{}, err
	}

	instanceTags, err := Extract(ds, p.Tags.Instance)
	if err != nil {
		return Result{}, err
	}
	instanceKeys, err := keywordsOf(p.Tags.Instance)
	if err != nil {
		return Result{}, err
	}

	if existing, err := p.Catalog.GetInstance(instanceID); err == nil {
		if existing.UID == instanceUID && tagsEqual(existing.Tags, instanceTags, instanceKeys) {
			return Result{Outcome: AlreadyStored, InstanceID: instanceID}, nil
		}
		return Result{}, &DataConflictError{Level: "instance", Existing: existing}
	} else if !errors.Is(err, catalog.ErrNotFound) {
		return Result{}, err
	}

	if err := p.ensureSeriesAndStudy(ds, studyID, seriesID, studyUID, seriesUID); err != nil {
		return Result{}, err
	}

	mergedTags := make(map[string]coerce.Value, len(instanceTags)+len(addMeta))
	for k, v := range instanceTags {
		mergedTags[k] = v
	}
	for k, v := range addMeta {
		mergedTags[k] = v
	}

	inst := &catalog.Instance{
		ID:       instanceID.StringKey(),
		UID:      instanceUID,
		SeriesID: seriesID.StringKey(),
		Tags:     mergedTags,
		Size:     int64(len(raw)),
	}

	if err := p.Catalog.InsertInstance(inst); err != nil {
		if errors.Is(err, catalog.ErrAlreadyExists) {
			// A concurrent writer beat us to it: re-check (step 3 again).
			return p.register(ds, raw, addMeta, persist)
		}
		return Result{}, err
	}

	guard := NewGuard(p.Catalog, instanceID)
	defer guard.Run()

	return persist(guard, instanceID)
}

// reconcilePathConflict runs when two concurrent registrations derive the
// same file path and lose the exclusive-create race: it compares the bytes
// this registration would have written against what is already on disk at
// path to decide whether the race was benign (identical content — nothing
// to report beyond AlreadyStored) or a genuine conflict.
//
// Grounded on spec.md §4.5's concurrency contract: "the loser receives a
// path-conflict error which the pipeline maps to DataConflict if the md5s
// also differ, or AlreadyStored if they match."
func (p *Pipeline) reconcilePathConflict(ds *dicom.DataSet, path string, instanceID identity.RecordID) (Result, error) {
	encoded, err := dicom.EncodeFile(ds, dicom.WriteOptions{})
	if err != nil {
		return Result{}, fmt.Errorf("register: re-encode after path conflict: %w", err)
	}
	sum := md5.Sum(encoded)
	incomingMD5 := hex.EncodeToString(sum[:])

	onDiskMD5, err := p.Store.MD5(path)
	if err != nil {
		return Result{}, fmt.Errorf("register: hash existing file at %s: %w", path, err)
	}

	if onDiskMD5 != incomingMD5 {
		return Result{}, &Md5ConflictError{ExistingID: instanceID, ExistingMD5: onDiskMD5, IncomingMD5: incomingMD5}
	}

	if err := p.Catalog.UpdateInstanceFile(instanceID, catalog.FileDescriptor{Path: path, Owned: true, MD5: onDiskMD5}); err != nil {
		return Result{}, fmt.Errorf("register: record file descriptor after path conflict: %w", err)
	}
	return Result{Outcome: AlreadyStored, InstanceID: instanceID}, nil
}

// ensureSeriesAndStudy implements step 4 of the algorithm: if the series
// already exists, it must match ds's series-level tags or this is a
// conflict; a new series recurses the same check one level up against the
// study before inserting both rows it needs.
func (p *Pipeline) ensureSeriesAndStudy(ds *dicom.DataSet, studyID, seriesID identity.RecordID, studyUID, seriesUID string) error {
	seriesTags, err := Extract(ds, p.Tags.Series)
	if err != nil {
		return err
	}
	seriesKeys, err := keywordsOf(p.Tags.Series)
	if err != nil {
		return err
	}

	if existing, err := p.Catalog.GetSeries(seriesID); err == nil {
		if tagsEqual(existing.Tags, seriesTags, seriesKeys) {
			return nil
		}
		return &DataConflictError{Level: "series", Existing: existing}
	} else if !errors.Is(err, catalog.ErrNotFound) {
		return err
	}

	studyTags, err := Extract(ds, p.Tags.Study)
	if err != nil {
		return err
	}
	studyKeys, err := keywordsOf(p.Tags.Study)
	if err != nil {
		return err
	}

	if existing, err := p.Catalog.GetStudy(studyID); err == nil {
		if !tagsEqual(existing.Tags, studyTags, studyKeys) {
			return &DataConflictError{Level: "study", Existing: existing}
		}
	} else if errors.Is(err, catalog.ErrNotFound) {
		study := &catalog.Study{ID: studyID.StringKey(), UID: studyUID, Tags: studyTags}
		if err := p.Catalog.InsertStudy(study); err != nil && !errors.Is(err, catalog.ErrAlreadyExists) {
			return err
		}
	} else {
		return err
	}

	series := &catalog.Series{ID: seriesID.StringKey(), UID: seriesUID, StudyID: studyID.StringKey(), Tags: seriesTags}
	if err := p.Catalog.InsertSeries(series); err != nil && !errors.Is(err, catalog.ErrAlreadyExists) {
		return err
	}
	return nil
}
