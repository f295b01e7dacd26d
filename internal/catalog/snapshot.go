// Snapshot persists and restores a Catalog as newline-delimited JSON, one
// row per line. go-memdb itself is purely in-process; this is the file-
// backed durability option spec.md §6's `--file <path>` CLI flag names
// (see cmd/rudicom), an alternative to the purely in-memory default.
package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/codeninja55/rudicom/internal/coerce"
)

type snapshotKind string

const (
	snapshotStudy    snapshotKind = "study"
	snapshotSeries   snapshotKind = "series"
	snapshotInstance snapshotKind = "instance"
)

type snapshotRow struct {
	Kind     snapshotKind  `json:"kind"`
	Study    *wireStudy    `json:"study,omitempty"`
	Series   *wireSeries   `json:"series,omitempty"`
	Instance *wireInstance `json:"instance,omitempty"`
}

// wireValue mirrors coerce.Value's variants as exported fields, since
// coerce.Value keeps its own fields private (internal/coerce deliberately
// has no MarshalJSON — JSON is this package's concern, not coerce's).
type wireValue struct {
	Kind coerce.Kind          `json:"kind"`
	B    bool                 `json:"b,omitempty"`
	I    int64                `json:"i,omitempty"`
	U    uint64               `json:"u,omitempty"`
	F32  float32              `json:"f32,omitempty"`
	F64  float64              `json:"f64,omitempty"`
	S    string               `json:"s,omitempty"`
	T    time.Time            `json:"t,omitempty"`
	Arr  []wireValue          `json:"arr,omitempty"`
	Map  map[string]wireValue `json:"map,omitempty"`
}

func toWireValue(v coerce.Value) wireValue {
	w := wireValue{Kind: v.Kind()}
	switch v.Kind() {
	case coerce.KindBool:
		w.B = v.Bool()
	case coerce.KindInt64:
		w.I = v.Int64()
	case coerce.KindUint64:
		w.U = v.Uint64()
	case coerce.KindFloat32:
		w.F32 = v.Float32()
	case coerce.KindFloat64:
		w.F64 = v.Float64()
	case coerce.KindString:
		w.S = v.String()
	case coerce.KindDateTime:
		w.T = v.Time()
	case coerce.KindArray:
		arr := v.Array()
		w.Arr = make([]wireValue, len(arr))
		for i, e := range arr {
			w.Arr[i] = toWireValue(e)
		}
	case coerce.KindMap:
		m := v.Map()
		w.Map = make(map[string]wireValue, m.Len())
		for _, k := range m.Keys() {
			val, _ := m.Get(k)
			w.Map[k] = toWireValue(val)
		}
	}
	return w
}

func (w wireValue) toValue() coerce.Value {
	switch w.Kind {
	case coerce.KindBool:
		return coerce.Bool(w.B)
	case coerce.KindInt64:
		return coerce.Int64(w.I)
	case coerce.KindUint64:
		return coerce.Uint64(w.U)
	case coerce.KindFloat32:
		return coerce.Float32(w.F32)
	case coerce.KindFloat64:
		return coerce.Float64(w.F64)
	case coerce.KindString:
		return coerce.String(w.S)
	case coerce.KindDateTime:
		return coerce.DateTime(w.T)
	case coerce.KindArray:
		arr := make([]coerce.Value, len(w.Arr))
		for i, e := range w.Arr {
			arr[i] = e.toValue()
		}
		return coerce.Array(arr)
	case coerce.KindMap:
		m := coerce.NewOrderedMap()
		for k, v := range w.Map {
			m.Set(k, v.toValue())
		}
		return coerce.Map(m)
	default:
		return coerce.None()
	}
}

func wireTags(tags map[string]coerce.Value) map[string]wireValue {
	out := make(map[string]wireValue, len(tags))
	for k, v := range tags {
		out[k] = toWireValue(v)
	}
	return out
}

func unwireTags(tags map[string]wireValue) map[string]coerce.Value {
	out := make(map[string]coerce.Value, len(tags))
	for k, v := range tags {
		out[k] = v.toValue()
	}
	return out
}

type wireStudy struct {
	ID        string
	UID       string
	PatientID string
	StudyDate string
	StudyTime string
	Tags      map[string]wireValue
	SeriesIDs []string
}

type wireSeries struct {
	ID                string
	UID               string
	StudyID           string
	SeriesNumber      string
	SeriesDescription string
	Tags              map[string]wireValue
	InstanceIDs       []string
}

type wireInstance struct {
	ID             string
	UID            string
	SeriesID       string
	InstanceNumber string
	Tags           map[string]wireValue
	File           FileDescriptor
	Size           int64
}

// WriteSnapshot serializes every study, series, and instance row as one
// JSON object per line, depth-first (a study's rows before its series',
// each series' rows before its instances') so LoadSnapshot can replay
// parents before children.
func (c *Catalog) WriteSnapshot(w io.Writer) error {
	studies, err := c.AllStudies()
	if err != nil {
		return fmt.Errorf("catalog: snapshot: %w", err)
	}

	enc := json.NewEncoder(w)
	for _, study := range studies {
		if err := enc.Encode(snapshotRow{Kind: snapshotStudy, Study: toWireStudy(study)}); err != nil {
			return fmt.Errorf("catalog: snapshot: encode study: %w", err)
		}

		series, err := c.SeriesOfStudy(study.UID)
		if err != nil {
			return fmt.Errorf("catalog: snapshot: %w", err)
		}
		for _, s := range series {
			if err := enc.Encode(snapshotRow{Kind: snapshotSeries, Series: toWireSeries(s)}); err != nil {
				return fmt.Errorf("catalog: snapshot: encode series: %w", err)
			}

			instances, err := c.InstancesOfSeries(s.UID, study.UID)
			if err != nil {
				return fmt.Errorf("catalog: snapshot: %w", err)
			}
			for _, inst := range instances {
				if err := enc.Encode(snapshotRow{Kind: snapshotInstance, Instance: toWireInstance(inst)}); err != nil {
					return fmt.Errorf("catalog: snapshot: encode instance: %w", err)
				}
			}
		}
	}
	return nil
}

// LoadSnapshot rebuilds a Catalog from a stream written by WriteSnapshot,
// replaying each row through InsertStudy/InsertSeries/InsertInstance, which
// also recomputes the aggregate tables as a side effect.
func LoadSnapshot(r io.Reader) (*Catalog, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bufio.NewReader(r))
	for {
		var row snapshotRow
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("catalog: load snapshot: %w", err)
		}

		switch row.Kind {
		case snapshotStudy:
			study := fromWireStudy(row.Study)
			if err := c.InsertStudy(study); err != nil {
				return nil, fmt.Errorf("catalog: load snapshot: study %s: %w", study.ID, err)
			}
		case snapshotSeries:
			series := fromWireSeries(row.Series)
			if err := c.InsertSeries(series); err != nil {
				return nil, fmt.Errorf("catalog: load snapshot: series %s: %w", series.ID, err)
			}
		case snapshotInstance:
			inst := fromWireInstance(row.Instance)
			if err := c.InsertInstance(inst); err != nil {
				return nil, fmt.Errorf("catalog: load snapshot: instance %s: %w", inst.ID, err)
			}
		default:
			return nil, fmt.Errorf("catalog: load snapshot: unknown row kind %q", row.Kind)
		}
	}
	return c, nil
}

func toWireStudy(s *Study) *wireStudy {
	return &wireStudy{
		ID: s.ID, UID: s.UID, PatientID: s.PatientID,
		StudyDate: s.StudyDate, StudyTime: s.StudyTime,
		Tags: wireTags(s.Tags), SeriesIDs: s.SeriesIDs,
	}
}

func fromWireStudy(w *wireStudy) *Study {
	return &Study{
		ID: w.ID, UID: w.UID, PatientID: w.PatientID,
		StudyDate: w.StudyDate, StudyTime: w.StudyTime,
		Tags: unwireTags(w.Tags), SeriesIDs: w.SeriesIDs,
	}
}

func toWireSeries(s *Series) *wireSeries {
	return &wireSeries{
		ID: s.ID, UID: s.UID, StudyID: s.StudyID,
		SeriesNumber: s.SeriesNumber, SeriesDescription: s.SeriesDescription,
		Tags: wireTags(s.Tags), InstanceIDs: s.InstanceIDs,
	}
}

func fromWireSeries(w *wireSeries) *Series {
	return &Series{
		ID: w.ID, UID: w.UID, StudyID: w.StudyID,
		SeriesNumber: w.SeriesNumber, SeriesDescription: w.SeriesDescription,
		Tags: unwireTags(w.Tags), InstanceIDs: w.InstanceIDs,
	}
}

func toWireInstance(inst *Instance) *wireInstance {
	return &wireInstance{
		ID: inst.ID, UID: inst.UID, SeriesID: inst.SeriesID,
		InstanceNumber: inst.InstanceNumber,
		Tags:           wireTags(inst.Tags),
		File:           inst.File,
		Size:           inst.Size,
	}
}

func fromWireInstance(w *wireInstance) *Instance {
	return &Instance{
		ID: w.ID, UID: w.UID, SeriesID: w.SeriesID,
		InstanceNumber: w.InstanceNumber,
		Tags:           unwireTags(w.Tags),
		File:           w.File,
		Size:           w.Size,
	}
}
