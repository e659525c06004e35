// Package record implements the typed record/value model that flows
// between pipeline stages: an ordered string-keyed mapping to tagged
// scalar, list, or nested-record values.
package record

import "fmt"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindRecord
)

// Value is a tagged variant over the scalar, list, and nested-record
// shapes a record field may hold. Null is a transient JSON-decode
// intermediate only: it must never be stored under a key in a Record
// that has entered a pipeline (see Decode).
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	list   []Value
	record *Record
}

func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func List(vs []Value) Value { return Value{kind: KindList, list: vs} }
func Nested(r *Record) Value { return Value{kind: KindRecord, record: r} }
func Null() Value            { return Value{kind: KindNull} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() bool       { return v.b }
func (v Value) Int() int64       { return v.i }
func (v Value) Float() float64   { return v.f }
func (v Value) Str() string      { return v.s }
func (v Value) List() []Value    { return v.list }
func (v Value) Record() *Record  { return v.record }

// Number reports whether v holds Int or Float, and its value as a float64.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Render converts v to its string form, per the field-template engine's
// rendering rules: bools render as "True"/"False", ints and
// floats as decimal text, strings verbatim, lists/records as compact JSON.
func (v Value) Render() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	case KindList, KindRecord:
		data, err := Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	case KindNull:
		return ""
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	return s
}

// Equal reports whether two values are structurally equal: same kind and
// same content (record key sets and values compared ignoring order).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindRecord:
		return a.record.Equal(b.record)
	case KindNull:
		return true
	default:
		return false
	}
}
