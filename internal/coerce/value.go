// Package coerce translates parsed DICOM elements into a neutral tagged
// value model shared by the catalog, registration pipeline, and HTTP
// surface.
//
// The model is a sum type over none, bool, int64, uint64, float32, float64,
// string, UTC datetime, ordered array, and an ordered string-keyed map — the
// same shape a dynamically typed config/JSON-ish layer would use, except
// that int/float width and signedness are preserved rather than collapsed
// into a single numeric kind, since DICOM's own VR set already distinguishes
// them.
//
// Grounded on the teacher's dicom/value.Value variants (StringValue,
// IntValue, FloatValue, BytesValue), whose Strings()/Ints()/Floats()
// accessors already separate "one value" from "many values" — this package
// reuses that split rather than re-deriving VR-specific parsing, and layers
// spec's flattening rule (empty -> none, one -> scalar, many -> array) on
// top uniformly.
package coerce

import "time"

// Kind identifies which alternative of the Value sum type is populated.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindDateTime
	KindArray
	KindMap
)

// Value is the neutral tagged value. Exactly one field is meaningful,
// selected by Kind; the rest are zero.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f32  float32
	f64  float64
	s    string
	t    time.Time
	arr  []Value
	m    *OrderedMap
}

func None() Value               { return Value{kind: KindNone} }
func Bool(b bool) Value         { return Value{kind: KindBool, b: b} }
func Int64(i int64) Value       { return Value{kind: KindInt64, i: i} }
func Uint64(u uint64) Value     { return Value{kind: KindUint64, u: u} }
func Float32(f float32) Value   { return Value{kind: KindFloat32, f32: f} }
func Float64(f float64) Value   { return Value{kind: KindFloat64, f64: f} }
func String(s string) Value     { return Value{kind: KindString, s: s} }
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t.UTC()} }
func Array(vs []Value) Value    { return Value{kind: KindArray, arr: vs} }
func Map(m *OrderedMap) Value   { return Value{kind: KindMap, m: m} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsNone() bool  { return v.kind == KindNone }
func (v Value) Bool() bool    { return v.b }
func (v Value) Int64() int64  { return v.i }
func (v Value) Uint64() uint64 { return v.u }
func (v Value) Float32() float32 { return v.f32 }
func (v Value) Float64() float64 { return v.f64 }
func (v Value) String() string   { return v.s }
func (v Value) Time() time.Time  { return v.t }
func (v Value) Array() []Value   { return v.arr }
func (v Value) Map() *OrderedMap { return v.m }

// Equals reports whether two Values carry the same kind and content. Arrays
// and maps compare element-wise/key-wise.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt64:
		return v.i == other.i
	case KindUint64:
		return v.u == other.u
	case KindFloat32:
		return v.f32 == other.f32
	case KindFloat64:
		return v.f64 == other.f64
	case KindString:
		return v.s == other.s
	case KindDateTime:
		return v.t.Equal(other.t)
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equals(other.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equals(other.m)
	default:
		return false
	}
}

// Interface unwraps v into a plain Go value suitable for json.Marshal:
// None becomes nil, DateTime becomes RFC 3339 text, Array/Map recurse.
func (v Value) Interface() any {
	switch v.kind {
	case KindNone:
		return nil
	case KindBool:
		return v.b
	case KindInt64:
		return v.i
	case KindUint64:
		return v.u
	case KindFloat32:
		return v.f32
	case KindFloat64:
		return v.f64
	case KindString:
		return v.s
	case KindDateTime:
		return v.t.Format(time.RFC3339)
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, v.m.Len())
		for _, k := range v.m.Keys() {
			val, _ := v.m.Get(k)
			out[k] = val.Interface()
		}
		return out
	default:
		return nil
	}
}

// OrderedMap is a string-keyed map that preserves insertion order, used for
// the "ordered keyed mapping" alternative of Value. FromElement does not
// produce maps: sequence elements coerce to None.
type OrderedMap struct {
	keys   []string
	values map[string]Value
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]Value)}
}

// Set inserts or overwrites key's value. Overwriting an existing key does
// not change its position in Keys().
func (m *OrderedMap) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *OrderedMap) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *OrderedMap) Keys() []string { return m.keys }
func (m *OrderedMap) Len() int       { return len(m.keys) }

// Equals compares two OrderedMaps by key set and value, ignoring key order.
func (m *OrderedMap) Equals(other *OrderedMap) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Len() != other.Len() {
		return false
	}
	for _, k := range m.keys {
		ov, ok := other.Get(k)
		if !ok {
			return false
		}
		v, _ := m.Get(k)
		if !v.Equals(ov) {
			return false
		}
	}
	return true
}
