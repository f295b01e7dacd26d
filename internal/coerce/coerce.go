package coerce

import (
	"strings"
	"time"

	"github.com/codeninja55/rudicom/dicom/datetime"
	"github.com/codeninja55/rudicom/dicom/element"
	"github.com/codeninja55/rudicom/dicom/value"
	"github.com/codeninja55/rudicom/dicom/vr"
)

// unsignedVRs are the integer VRs whose values are unsigned; every other
// integer VR is coerced to a signed int64.
var unsignedVRs = map[vr.VR]bool{
	vr.UnsignedShort:    true,
	vr.UnsignedLong:     true,
	vr.UnsignedVeryLong: true,
}

// FromElement coerces a parsed DICOM element's value into the neutral Value
// model.
//
// The flattening rule is uniform across all VR families: zero values become
// None, exactly one becomes a scalar, more than one becomes an Array of
// scalars. Integer VRs dispatch signed vs. unsigned and float VRs dispatch
// 32- vs. 64-bit based on elem.VR(); Date/Time/DateTime string VRs are
// parsed into a single UTC time.Time rather than left as raw text.
//
// Sequence (SQ) elements and any other binary value the parser could not
// interpret as string/int/float are coerced to None — the underlying parser
// (dicom/element_parser.go) only skips SQ content rather than reconstructing
// nested items, so there is nothing to recurse into. None of the catalog's
// configured tag sets reference an SQ-VR tag, so this is never exercised in
// practice.
func FromElement(elem *element.Element) (Value, error) {
	if elem == nil {
		return None(), nil
	}

	switch v := elem.Value().(type) {
	case *value.StringValue:
		return stringValueToValue(elem.VR(), v)
	case *value.IntValue:
		return intValueToValue(elem.VR(), v), nil
	case *value.FloatValue:
		return floatValueToValue(elem.VR(), v), nil
	default:
		// *value.BytesValue, SQ placeholders, and anything else binary.
		return None(), nil
	}
}

func stringValueToValue(elemVR vr.VR, v *value.StringValue) (Value, error) {
	if len(v.Strings()) == 0 {
		return None(), nil
	}

	switch elemVR {
	case vr.Date:
		d, err := v.AsDate()
		if err != nil {
			return None(), err
		}
		return DateTime(d.Time), nil
	case vr.Time:
		tm, err := v.AsTime()
		if err != nil {
			return None(), err
		}
		return DateTime(tm.Time), nil
	case vr.DateTime:
		dt, err := v.AsDateTime()
		if err != nil {
			return None(), err
		}
		return DateTime(normalizeDateTime(dt)), nil
	}

	raw := v.Strings()
	strs := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		strs = append(strs, s)
	}

	switch len(strs) {
	case 0:
		return None(), nil
	case 1:
		return String(strs[0]), nil
	default:
		out := make([]Value, len(strs))
		for i, s := range strs {
			out[i] = String(s)
		}
		return Array(out), nil
	}
}

// normalizeDateTime applies spec's naive-datetime rule: a DT value with no
// timezone offset is interpreted in the local timezone, then converted to
// UTC. The underlying parser instead stamps a no-offset value directly as
// time.UTC (datetime.go's parseDateTimeComponents sets loc = time.UTC when
// no offset is present), so a naive value must have its wall-clock
// components re-read and reconstructed against time.Local before the final
// UTC conversion, rather than trusting dt.Time as already correct.
func normalizeDateTime(dt datetime.DateTime) time.Time {
	if !dt.NoOffset {
		return dt.Time.UTC()
	}
	t := dt.Time
	local := time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.Local,
	)
	return local.UTC()
}

func intValueToValue(elemVR vr.VR, v *value.IntValue) Value {
	ints := v.Ints()
	unsigned := unsignedVRs[elemVR]

	toScalar := func(i int64) Value {
		if unsigned {
			return Uint64(uint64(i))
		}
		return Int64(i)
	}

	switch len(ints) {
	case 0:
		return None()
	case 1:
		return toScalar(ints[0])
	default:
		out := make([]Value, len(ints))
		for i, n := range ints {
			out[i] = toScalar(n)
		}
		return Array(out)
	}
}

func floatValueToValue(elemVR vr.VR, v *value.FloatValue) Value {
	floats := v.Floats()
	single := elemVR == vr.FloatingPointSingle

	toScalar := func(f float64) Value {
		if single {
			return Float32(float32(f))
		}
		return Float64(f)
	}

	switch len(floats) {
	case 0:
		return None()
	case 1:
		return toScalar(floats[0])
	default:
		out := make([]Value, len(floats))
		for i, f := range floats {
			out[i] = toScalar(f)
		}
		return Array(out)
	}
}
