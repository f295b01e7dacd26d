// Package catalog implements the transactional study/series/instance
// hierarchy over an in-process KV engine, including the denormalized
// parent-child lists and aggregate count/size tables spec describes as
// catalog "triggers".
//
// Grounded on the original Rust implementation's three SurrealDB tables and
// event triggers (original_source/src/db.rs, original_source/src/db/entry.rs,
// original_source/src/db/register.rs): SurrealDB's `define event ... on
// table ... when $event = "CREATE"/"DELETE"` becomes explicit cascade calls
// made inside the same hashicorp/go-memdb write transaction as the
// triggering insert/delete, since go-memdb has no native trigger mechanism.
package catalog

import "github.com/codeninja55/rudicom/internal/coerce"

// FileDescriptor records where an instance's bytes live and whether this
// system owns them.
type FileDescriptor struct {
	Path  string
	Owned bool
	MD5   string
}

// Study is the top of the three-level hierarchy.
type Study struct {
	ID        string // internal/identity.RecordID.StringKey()
	UID       string
	PatientID string
	StudyDate string
	StudyTime string
	Tags      map[string]coerce.Value
	SeriesIDs []string
}

// Series belongs to exactly one Study.
type Series struct {
	ID                string
	UID               string
	StudyID           string
	SeriesNumber      string
	SeriesDescription string
	Tags              map[string]coerce.Value
	InstanceIDs       []string
}

// Instance belongs to exactly one Series and owns a single file payload.
type Instance struct {
	ID             string
	UID            string
	SeriesID       string
	InstanceNumber string
	Tags           map[string]coerce.Value
	File           FileDescriptor
	Size           int64
}

// Aggregate holds the running count/size-bytes totals the catalog maintains
// for a study or series as instances are inserted and removed beneath it.
type Aggregate struct {
	ID        string // the study's or series's own ID
	Count     int
	SizeBytes int64
}

func (s *Study) clone() *Study {
	c := *s
	c.SeriesIDs = append([]string(nil), s.SeriesIDs...)
	c.Tags = cloneTags(s.Tags)
	return &c
}

func (s *Series) clone() *Series {
	c := *s
	c.InstanceIDs = append([]string(nil), s.InstanceIDs...)
	c.Tags = cloneTags(s.Tags)
	return &c
}

func (inst *Instance) clone() *Instance {
	c := *inst
	c.Tags = cloneTags(inst.Tags)
	return &c
}

func cloneTags(m map[string]coerce.Value) map[string]coerce.Value {
	if m == nil {
		return nil
	}
	out := make(map[string]coerce.Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(ss []string, s string) []string {
	out := make([]string, 0, len(ss))
	for _, v := range ss {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
