// Package identity derives deterministic, hierarchically prefixed catalog
// keys from DICOM UIDs.
//
// A composite key is built by encoding each UID (study, then series, then
// instance) as a fixed-width, right-padded byte segment and concatenating
// parent segments ahead of the child's. Because every segment has the same
// width regardless of the source UID's length, concatenation alone gives the
// prefix property the catalog's range scans depend on: an instance's key
// always starts with its series' key, which always starts with its study's
// key.
//
// Grounded on the original Rust implementation's
// RecordId::str_to_vec/from_instance/from_series/from_study (src/db/record.rs),
// re-expressed as a plain padded byte buffer rather than base64-then-i64-chunk
// encoding — Go has no reason to round-trip through int64 words, and a raw
// padded byte string compares and prefixes identically.
package identity

import (
	"bytes"
	"fmt"

	"github.com/codeninja55/rudicom/dicom/uid"
)

// Table names the three catalog tables a RecordID can belong to.
type Table string

const (
	TableStudy    Table = "studies"
	TableSeries   Table = "series"
	TableInstance Table = "instances"
)

// segmentWidth is the fixed width, in bytes, of one encoded UID segment.
// 64 matches the maximum length of a DICOM UID (Part 5, Section 9.1), so no
// valid UID is ever truncated.
const segmentWidth = 64

// padByte fills the unused tail of a segment. 0x00 never appears in a valid
// UID (digits and '.' only), so it cannot be confused with UID content.
const padByte = 0x00

// RecordID is an opaque composite key: a table name plus a byte-encoded,
// hierarchically prefixed key vector.
type RecordID struct {
	Table Table
	Key   []byte
}

// encodeSegment right-pads uidStr to segmentWidth bytes.
func encodeSegment(uidStr string) []byte {
	seg := make([]byte, segmentWidth)
	copy(seg, uidStr)
	for i := len(uidStr); i < segmentWidth; i++ {
		seg[i] = padByte
	}
	return seg
}

// decodeSegment strips the padding from a segment and returns the original
// UID string.
func decodeSegment(seg []byte) string {
	return string(bytes.TrimRight(seg, string(padByte)))
}

func validateUID(label, s string) error {
	if !uid.IsValid(s) {
		return fmt.Errorf("identity: invalid %s %q", label, s)
	}
	return nil
}

// FromStudy derives the RecordID for a study from its Study Instance UID.
func FromStudy(studyUID string) (RecordID, error) {
	if err := validateUID("study UID", studyUID); err != nil {
		return RecordID{}, err
	}
	return RecordID{Table: TableStudy, Key: encodeSegment(studyUID)}, nil
}

// FromSeries derives the RecordID for a series from its Series Instance UID
// and its owning Study Instance UID.
func FromSeries(seriesUID, studyUID string) (RecordID, error) {
	if err := validateUID("study UID", studyUID); err != nil {
		return RecordID{}, err
	}
	if err := validateUID("series UID", seriesUID); err != nil {
		return RecordID{}, err
	}
	key := make([]byte, 0, 2*segmentWidth)
	key = append(key, encodeSegment(studyUID)...)
	key = append(key, encodeSegment(seriesUID)...)
	return RecordID{Table: TableSeries, Key: key}, nil
}

// FromInstance derives the RecordID for an instance from its SOP Instance
// UID and its owning Series Instance UID and Study Instance UID.
func FromInstance(instanceUID, seriesUID, studyUID string) (RecordID, error) {
	if err := validateUID("study UID", studyUID); err != nil {
		return RecordID{}, err
	}
	if err := validateUID("series UID", seriesUID); err != nil {
		return RecordID{}, err
	}
	if err := validateUID("instance UID", instanceUID); err != nil {
		return RecordID{}, err
	}
	key := make([]byte, 0, 3*segmentWidth)
	key = append(key, encodeSegment(studyUID)...)
	key = append(key, encodeSegment(seriesUID)...)
	key = append(key, encodeSegment(instanceUID)...)
	return RecordID{Table: TableInstance, Key: key}, nil
}

// Tail recovers the own (last-segment) UID of the composite key as a display
// string — the study UID for a study id, the series UID for a series id, the
// instance UID for an instance id.
func (r RecordID) Tail() string {
	if len(r.Key) < segmentWidth {
		return ""
	}
	return decodeSegment(r.Key[len(r.Key)-segmentWidth:])
}

// String renders the RecordID as "table:tail-uid", matching the original
// implementation's Display impl.
func (r RecordID) String() string {
	return fmt.Sprintf("%s:%s", r.Table, r.Tail())
}

// StringKey returns the composite key as a Go string suitable for use as a
// go-memdb StringFieldIndex value. The bytes are used as-is (not base64
// encoded) so that byte-prefix equality — and therefore the hierarchy's
// prefix property — survives the conversion; base64 would not preserve
// prefixes across segment boundaries that don't align to 3-byte groups.
func (r RecordID) StringKey() string {
	return string(r.Key)
}

// Equals reports whether two RecordIDs name the same row.
func (r RecordID) Equals(other RecordID) bool {
	return r.Table == other.Table && bytes.Equal(r.Key, other.Key)
}

// HasPrefix reports whether r is a descendant of parent in the hierarchy:
// parent's key is a byte-prefix of r's key. Used to confirm the composite-key
// hierarchy invariant independent of any particular KV engine's range scan.
func (r RecordID) HasPrefix(parent RecordID) bool {
	return bytes.HasPrefix(r.Key, parent.Key)
}

// StudyPrefix returns the key prefix identifying all series/instances
// belonging to the study with the given Study Instance UID, for use as the
// lower bound of a range scan over the series or instances table.
func StudyPrefix(studyUID string) (string, error) {
	if err := validateUID("study UID", studyUID); err != nil {
		return "", err
	}
	return string(encodeSegment(studyUID)), nil
}

// SeriesPrefix returns the key prefix identifying all instances belonging to
// the series with the given Series Instance UID and Study Instance UID, for
// use as the lower bound of a range scan over the instances table.
func SeriesPrefix(seriesUID, studyUID string) (string, error) {
	if err := validateUID("study UID", studyUID); err != nil {
		return "", err
	}
	if err := validateUID("series UID", seriesUID); err != nil {
		return "", err
	}
	key := make([]byte, 0, 2*segmentWidth)
	key = append(key, encodeSegment(studyUID)...)
	key = append(key, encodeSegment(seriesUID)...)
	return string(key), nil
}
