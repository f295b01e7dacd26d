package filestore

import (
	"fmt"
	"strings"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/internal/coerce"
)

// LookupKeyword resolves a pattern token's keyword against ds and renders
// it as a filename-safe string. The second return is false when the keyword
// names a tag absent from ds; it is true (with an empty string) when the
// tag is present but its coerced value is empty, so callers can distinguish
// "<<none>>" from "<<empty>>" per the pattern-substitution rule.
func LookupKeyword(ds *dicom.DataSet, keyword string) (string, bool) {
	elem, err := ds.GetByKeyword(keyword)
	if err != nil {
		return "", false
	}

	val, err := coerce.FromElement(elem)
	if err != nil || val.IsNone() {
		return "", true
	}

	return stringify(val), true
}

// stringify renders a coerced Value as plain text for path construction.
// Arrays join their elements with "_"; maps are not expected in a filename
// pattern and render as their keys joined the same way.
func stringify(v coerce.Value) string {
	switch v.Kind() {
	case coerce.KindString:
		return v.String()
	case coerce.KindInt64:
		return fmt.Sprintf("%d", v.Int64())
	case coerce.KindUint64:
		return fmt.Sprintf("%d", v.Uint64())
	case coerce.KindFloat32:
		return fmt.Sprintf("%g", v.Float32())
	case coerce.KindFloat64:
		return fmt.Sprintf("%g", v.Float64())
	case coerce.KindBool:
		return fmt.Sprintf("%t", v.Bool())
	case coerce.KindDateTime:
		return v.Time().Format("20060102150405")
	case coerce.KindArray:
		parts := make([]string, len(v.Array()))
		for i, e := range v.Array() {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, "_")
	case coerce.KindMap:
		keys := v.Map().Keys()
		return strings.Join(keys, "_")
	default:
		return ""
	}
}
