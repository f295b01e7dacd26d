package catalog

import (
	"fmt"

	"github.com/codeninja55/rudicom/internal/identity"
	"github.com/hashicorp/go-memdb"
)

// Catalog is the transactional study/series/instance store.
type Catalog struct {
	db *memdb.MemDB
}

// New returns an empty Catalog.
func New() (*Catalog, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("catalog: init: %w", err)
	}
	return &Catalog{db: db}, nil
}

// --- studies ---------------------------------------------------------------

// GetStudy returns the study with the given id, or ErrNotFound.
func (c *Catalog) GetStudy(id identity.RecordID) (*Study, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	return c.getStudy(txn, id.StringKey())
}

func (c *Catalog) getStudy(txn *memdb.Txn, key string) (*Study, error) {
	raw, err := txn.First(tableStudies, "id", key)
	if err != nil {
		return nil, fmt.Errorf("catalog: get study: %w", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	return raw.(*Study), nil
}

// InsertStudy inserts a new study row. Returns ErrAlreadyExists if the id is
// already present.
func (c *Catalog) InsertStudy(s *Study) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	if _, err := c.getStudy(txn, s.ID); err == nil {
		return ErrAlreadyExists
	} else if err != ErrNotFound {
		return err
	}

	if err := txn.Insert(tableStudies, s.clone()); err != nil {
		return fmt.Errorf("catalog: insert study: %w", err)
	}
	txn.Commit()
	return nil
}

// --- series ------------------------------------------------------------

// GetSeries returns the series with the given id, or ErrNotFound.
func (c *Catalog) GetSeries(id identity.RecordID) (*Series, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	return c.getSeries(txn, id.StringKey())
}

func (c *Catalog) getSeries(txn *memdb.Txn, key string) (*Series, error) {
	raw, err := txn.First(tableSeries, "id", key)
	if err != nil {
		return nil, fmt.Errorf("catalog: get series: %w", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	return raw.(*Series), nil
}

// InsertSeries inserts a new series row and adds it to its parent study's
// denormalized series list. The parent study must already exist. Returns
// ErrAlreadyExists if the series id is already present.
func (c *Catalog) InsertSeries(s *Series) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	if _, err := c.getSeries(txn, s.ID); err == nil {
		return ErrAlreadyExists
	} else if err != ErrNotFound {
		return err
	}

	study, err := c.getStudy(txn, s.StudyID)
	if err != nil {
		return fmt.Errorf("catalog: insert series: parent study: %w", err)
	}

	if err := txn.Insert(tableSeries, s.clone()); err != nil {
		return fmt.Errorf("catalog: insert series: %w", err)
	}

	if !containsString(study.SeriesIDs, s.ID) {
		study = study.clone()
		study.SeriesIDs = append(study.SeriesIDs, s.ID)
		if err := txn.Insert(tableStudies, study); err != nil {
			return fmt.Errorf("catalog: insert series: update study: %w", err)
		}
	}

	txn.Commit()
	return nil
}

// --- instances ---------------------------------------------------------

// GetInstance returns the instance with the given id, or ErrNotFound.
func (c *Catalog) GetInstance(id identity.RecordID) (*Instance, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	return c.getInstance(txn, id.StringKey())
}

func (c *Catalog) getInstance(txn *memdb.Txn, key string) (*Instance, error) {
	raw, err := txn.First(tableInstances, "id", key)
	if err != nil {
		return nil, fmt.Errorf("catalog: get instance: %w", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	return raw.(*Instance), nil
}

// InsertInstance inserts a new instance row, links it into its parent
// series' denormalized instance list, and increments the series' and
// study's aggregate count/size-bytes totals — all inside one transaction.
// The parent series must already exist. Returns ErrAlreadyExists if the
// instance id is already present.
func (c *Catalog) InsertInstance(inst *Instance) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	if _, err := c.getInstance(txn, inst.ID); err == nil {
		return ErrAlreadyExists
	} else if err != ErrNotFound {
		return err
	}

	series, err := c.getSeries(txn, inst.SeriesID)
	if err != nil {
		return fmt.Errorf("catalog: insert instance: parent series: %w", err)
	}

	if err := txn.Insert(tableInstances, inst); err != nil {
		return fmt.Errorf("catalog: insert instance: %w", err)
	}

	if !containsString(series.InstanceIDs, inst.ID) {
		series = series.clone()
		series.InstanceIDs = append(series.InstanceIDs, inst.ID)
		if err := txn.Insert(tableSeries, series); err != nil {
			return fmt.Errorf("catalog: insert instance: update series: %w", err)
		}
	}

	if err := c.bumpAggregate(txn, tableInstancesPerSeries, series.ID, 1, inst.Size); err != nil {
		return err
	}
	if err := c.bumpAggregate(txn, tableInstancesPerStudy, series.StudyID, 1, inst.Size); err != nil {
		return err
	}

	txn.Commit()
	return nil
}

// UpdateInstanceFile records the file descriptor for an already-inserted
// instance row. Used by the registration pipeline once the payload has been
// written to the file store, after the row itself was inserted to claim the
// id under the rollback guard.
func (c *Catalog) UpdateInstanceFile(id identity.RecordID, file FileDescriptor) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	key := id.StringKey()
	inst, err := c.getInstance(txn, key)
	if err != nil {
		return err
	}
	inst = inst.clone()
	inst.File = file

	if err := txn.Insert(tableInstances, inst); err != nil {
		return fmt.Errorf("catalog: update instance file: %w", err)
	}
	txn.Commit()
	return nil
}

// DeleteInstance removes the instance with the given id and cascades: it
// unlinks the instance from its series, decrementing that series' and its
// parent study's aggregates; if the instance was the series' last one, the
// series itself is deleted (and its aggregate row removed) and the cascade
// repeats one level up against the parent study. The per-study aggregate is
// always decremented by the removed instance, whether or not the series
// itself survives — only the aggregate *row* is removed, and only once the
// study row itself is deleted. Returns ErrNotFound if the instance doesn't
// exist.
//
// Grounded on original_source/src/db.rs's del_instance/del_series event
// definitions: "if more than one sibling remains, just unlink; otherwise
// delete the parent too."
func (c *Catalog) DeleteInstance(id identity.RecordID) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	key := id.StringKey()
	inst, err := c.getInstance(txn, key)
	if err != nil {
		return err
	}
	if err := txn.Delete(tableInstances, inst); err != nil {
		return fmt.Errorf("catalog: delete instance: %w", err)
	}

	series, err := c.getSeries(txn, inst.SeriesID)
	if err != nil {
		return fmt.Errorf("catalog: delete instance: parent series: %w", err)
	}

	if len(series.InstanceIDs) > 1 {
		series = series.clone()
		series.InstanceIDs = removeString(series.InstanceIDs, inst.ID)
		if err := txn.Insert(tableSeries, series); err != nil {
			return fmt.Errorf("catalog: delete instance: update series: %w", err)
		}
		if err := c.bumpAggregate(txn, tableInstancesPerSeries, series.ID, -1, -inst.Size); err != nil {
			return err
		}
		if err := c.bumpAggregate(txn, tableInstancesPerStudy, series.StudyID, -1, -inst.Size); err != nil {
			return err
		}
	} else {
		if err := txn.Delete(tableSeries, series); err != nil {
			return fmt.Errorf("catalog: delete instance: remove empty series: %w", err)
		}
		if err := c.deleteAggregate(txn, tableInstancesPerSeries, series.ID); err != nil {
			return err
		}
		if err := c.bumpAggregate(txn, tableInstancesPerStudy, series.StudyID, -1, -inst.Size); err != nil {
			return err
		}
		if err := c.cascadeDeleteSeries(txn, series); err != nil {
			return err
		}
	}

	txn.Commit()
	return nil
}

// cascadeDeleteSeries unlinks series from its parent study, deleting the
// study too if series was its last child.
func (c *Catalog) cascadeDeleteSeries(txn *memdb.Txn, series *Series) error {
	study, err := c.getStudy(txn, series.StudyID)
	if err != nil {
		return fmt.Errorf("catalog: cascade delete: parent study: %w", err)
	}

	if len(study.SeriesIDs) > 1 {
		study = study.clone()
		study.SeriesIDs = removeString(study.SeriesIDs, series.ID)
		if err := txn.Insert(tableStudies, study); err != nil {
			return fmt.Errorf("catalog: cascade delete: update study: %w", err)
		}
		return nil
	}

	if err := txn.Delete(tableStudies, study); err != nil {
		return fmt.Errorf("catalog: cascade delete: remove empty study: %w", err)
	}
	return c.deleteAggregate(txn, tableInstancesPerStudy, study.ID)
}

// --- aggregates ----------------------------------------------------------

func (c *Catalog) getAggregate(txn *memdb.Txn, table, id string) (*Aggregate, error) {
	raw, err := txn.First(table, "id", id)
	if err != nil {
		return nil, fmt.Errorf("catalog: get aggregate: %w", err)
	}
	if raw == nil {
		return &Aggregate{ID: id}, nil
	}
	agg := *raw.(*Aggregate)
	return &agg, nil
}

func (c *Catalog) bumpAggregate(txn *memdb.Txn, table, id string, deltaCount int, deltaSize int64) error {
	agg, err := c.getAggregate(txn, table, id)
	if err != nil {
		return err
	}
	agg.Count += deltaCount
	agg.SizeBytes += deltaSize
	if err := txn.Insert(table, agg); err != nil {
		return fmt.Errorf("catalog: update aggregate: %w", err)
	}
	return nil
}

func (c *Catalog) deleteAggregate(txn *memdb.Txn, table, id string) error {
	raw, err := txn.First(table, "id", id)
	if err != nil {
		return fmt.Errorf("catalog: delete aggregate: %w", err)
	}
	if raw == nil {
		return nil
	}
	if err := txn.Delete(table, raw); err != nil {
		return fmt.Errorf("catalog: delete aggregate: %w", err)
	}
	return nil
}

// InstancesPerSeries returns the running count/size-bytes total for the
// given series id. A series with no recorded instances returns a zero
// Aggregate, not an error.
func (c *Catalog) InstancesPerSeries(seriesID identity.RecordID) (Aggregate, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	agg, err := c.getAggregate(txn, tableInstancesPerSeries, seriesID.StringKey())
	if err != nil {
		return Aggregate{}, err
	}
	return *agg, nil
}

// InstancesPerStudy returns the running count/size-bytes total for the
// given study id.
func (c *Catalog) InstancesPerStudy(studyID identity.RecordID) (Aggregate, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	agg, err := c.getAggregate(txn, tableInstancesPerStudy, studyID.StringKey())
	if err != nil {
		return Aggregate{}, err
	}
	return *agg, nil
}

// --- range scans -----------------------------------------------------------

// SeriesOfStudy returns every series beneath the given study, via a
// byte-prefix range scan over the series table's composite key.
func (c *Catalog) SeriesOfStudy(studyUID string) ([]*Series, error) {
	prefix, err := identity.StudyPrefix(studyUID)
	if err != nil {
		return nil, err
	}
	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableSeries, "id_prefix", prefix)
	if err != nil {
		return nil, fmt.Errorf("catalog: range scan series: %w", err)
	}
	var out []*Series
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(*Series))
	}
	return out, nil
}

// InstancesOfSeries returns every instance beneath the given series, via a
// byte-prefix range scan over the instances table's composite key.
func (c *Catalog) InstancesOfSeries(seriesUID, studyUID string) ([]*Instance, error) {
	prefix, err := identity.SeriesPrefix(seriesUID, studyUID)
	if err != nil {
		return nil, err
	}
	return c.instancesWithPrefix(prefix)
}

// InstancesOfStudy returns every instance beneath the given study, via a
// byte-prefix range scan over the instances table's composite key.
func (c *Catalog) InstancesOfStudy(studyUID string) ([]*Instance, error) {
	prefix, err := identity.StudyPrefix(studyUID)
	if err != nil {
		return nil, err
	}
	return c.instancesWithPrefix(prefix)
}

func (c *Catalog) instancesWithPrefix(prefix string) ([]*Instance, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableInstances, "id_prefix", prefix)
	if err != nil {
		return nil, fmt.Errorf("catalog: range scan instances: %w", err)
	}
	var out []*Instance
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(*Instance))
	}
	return out, nil
}

// AllStudies returns every study row, for statistics/listing endpoints.
func (c *Catalog) AllStudies() ([]*Study, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableStudies, "id")
	if err != nil {
		return nil, fmt.Errorf("catalog: list studies: %w", err)
	}
	var out []*Study
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(*Study))
	}
	return out, nil
}
