// Package register implements the registration pipeline: the write path
// that extracts identity and metadata from a parsed DICOM object,
// reconciles it against the catalog, inserts the resulting rows, and
// writes the file payload behind a rollback guard.
//
// Grounded on original_source/src/db/register.rs's register_instance: the
// same extract → lookup-instance → lookup-series/study → insert → guard
// shape, re-expressed without SurrealDB's query-string trigger mechanism
// since internal/catalog already runs its cascades inline.
package register

import (
	"fmt"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/dicom/tag"
	"github.com/codeninja55/rudicom/internal/coerce"
)

// TagSet names the configurable tags extracted and stored at each level of
// the hierarchy, per spec's study_tags/series_tags/instance_tags config
// keys.
type TagSet struct {
	Study    []tag.Tag
	Series   []tag.Tag
	Instance []tag.Tag
}

// Extract coerces every tag in tags out of ds into a keyword-keyed map. A
// tag absent from ds is still present in the result as coerce.None(), per
// spec.md §4.1's "not-present is signaled as none when extracting" rule —
// callers compare maps key-by-key, so a missing key would otherwise be
// indistinguishable from "never configured".
func Extract(ds *dicom.DataSet, tags []tag.Tag) (map[string]coerce.Value, error) {
	out := make(map[string]coerce.Value, len(tags))
	for _, t := range tags {
		info, err := tag.Find(t)
		if err != nil {
			return nil, fmt.Errorf("register: unknown tag %s in configured tag set: %w", t, err)
		}

		elem, err := ds.Get(t)
		if err != nil {
			out[info.Keyword] = coerce.None()
			continue
		}

		val, err := coerce.FromElement(elem)
		if err != nil {
			return nil, fmt.Errorf("register: coerce %s: %w", info.Keyword, err)
		}
		out[info.Keyword] = val
	}
	return out, nil
}

// extractUID reads a single required identifying UID by keyword, returning
// an error if it is absent, empty, or multi-valued.
func extractUID(ds *dicom.DataSet, keyword string) (string, error) {
	elem, err := ds.GetByKeyword(keyword)
	if err != nil {
		return "", fmt.Errorf("register: missing required %s: %w", keyword, err)
	}
	val, err := coerce.FromElement(elem)
	if err != nil {
		return "", fmt.Errorf("register: coerce %s: %w", keyword, err)
	}
	if val.Kind() != coerce.KindString || val.String() == "" {
		return "", fmt.Errorf("register: %s is not a single non-empty value", keyword)
	}
	return val.String(), nil
}

// tagsEqual reports whether two extracted tag maps carry identical values
// for every key in keys. Both maps are expected to contain every key (see
// Extract); a missing key compares as coerce.None() on that side.
func tagsEqual(a, b map[string]coerce.Value, keys []string) bool {
	for _, k := range keys {
		av, ok := a[k]
		if !ok {
			av = coerce.None()
		}
		bv, ok := b[k]
		if !ok {
			bv = coerce.None()
		}
		if !av.Equals(bv) {
			return false
		}
	}
	return true
}

func keywordsOf(tags []tag.Tag) ([]string, error) {
	out := make([]string, len(tags))
	for i, t := range tags {
		info, err := tag.Find(t)
		if err != nil {
			return nil, fmt.Errorf("register: unknown tag %s: %w", t, err)
		}
		out[i] = info.Keyword
	}
	return out, nil
}
