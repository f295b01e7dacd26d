// Package remove implements subtree teardown (Remove) and read-only
// checksum re-validation (Verify) over a resolved set of instances.
//
// Grounded on spec.md §4.6: both operations resolve an id at any level of
// the hierarchy to its instance set via the catalog's range scans, then
// fan out across that set with a bounded worker pool — the same
// Workers-bounded sync.WaitGroup shape as the teacher's
// dicom/directory_writer.go concurrent write loop.
package remove

import (
	"fmt"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/identity"
)

// resolveInstances expands id — a study, series, or instance RecordID —
// into every instance beneath it.
func resolveInstances(c *catalog.Catalog, id identity.RecordID) ([]*catalog.Instance, error) {
	switch id.Table {
	case identity.TableInstance:
		inst, err := c.GetInstance(id)
		if err != nil {
			return nil, err
		}
		return []*catalog.Instance{inst}, nil

	case identity.TableSeries:
		series, err := c.GetSeries(id)
		if err != nil {
			return nil, err
		}
		study, err := c.GetStudy(studyIDFromKey(series.StudyID))
		if err != nil {
			return nil, fmt.Errorf("remove: resolve series' parent study: %w", err)
		}
		return c.InstancesOfSeries(series.UID, study.UID)

	case identity.TableStudy:
		study, err := c.GetStudy(id)
		if err != nil {
			return nil, err
		}
		return c.InstancesOfStudy(study.UID)

	default:
		return nil, fmt.Errorf("remove: unknown table %q", id.Table)
	}
}

// studyIDFromKey wraps an already-composed study key string (as stored in
// Series.StudyID) back into a RecordID, without re-deriving it from a UID.
func studyIDFromKey(key string) identity.RecordID {
	return identity.RecordID{Table: identity.TableStudy, Key: []byte(key)}
}
