package catalog

import "github.com/hashicorp/go-memdb"

const (
	tableStudies            = "studies"
	tableSeries             = "series"
	tableInstances          = "instances"
	tableInstancesPerSeries = "instances_per_series"
	tableInstancesPerStudy  = "instances_per_studies"
)

// schema declares the five go-memdb tables the catalog needs: the three
// entity tables plus the two aggregate tables. Every table is keyed on its
// "id" field, which holds a composite key's raw byte string (see
// internal/identity.RecordID.StringKey) — go-memdb's StringFieldIndex
// compares that field byte-for-byte, and its "<index>_prefix" query gives
// the prefix range scans the hierarchy depends on.
func schema() *memdb.DBSchema {
	idIndex := func() *memdb.IndexSchema {
		return &memdb.IndexSchema{
			Name:    "id",
			Unique:  true,
			Indexer: &memdb.StringFieldIndex{Field: "ID"},
		}
	}

	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableStudies: {
				Name:    tableStudies,
				Indexes: map[string]*memdb.IndexSchema{"id": idIndex()},
			},
			tableSeries: {
				Name:    tableSeries,
				Indexes: map[string]*memdb.IndexSchema{"id": idIndex()},
			},
			tableInstances: {
				Name:    tableInstances,
				Indexes: map[string]*memdb.IndexSchema{"id": idIndex()},
			},
			tableInstancesPerSeries: {
				Name:    tableInstancesPerSeries,
				Indexes: map[string]*memdb.IndexSchema{"id": idIndex()},
			},
			tableInstancesPerStudy: {
				Name:    tableInstancesPerStudy,
				Indexes: map[string]*memdb.IndexSchema{"id": idIndex()},
			},
		},
	}
}
