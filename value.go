// value.go — the slang runtime value model.
//
// Values form a small closed tagged union: integers, text, and ordered
// lists of values. Lists may be heterogeneous and arbitrarily nested;
// the grammar cannot express a cyclic list, so Depth is total.
package slang

import (
	"strconv"
	"strings"
)

// ValueTag enumerates the runtime kinds a Value may hold.
// The tag determines which Go type Value.Data carries.
type ValueTag int

const (
	VTInt  ValueTag = iota // int64
	VTText                 // string
	VTList                 // []Value
)

func (t ValueTag) String() string {
	switch t {
	case VTInt:
		return "integer"
	case VTText:
		return "text"
	case VTList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier used by the evaluator.
//
// Invariants:
//   - Tag==VTInt  => Data is int64
//   - Tag==VTText => Data is string
//   - Tag==VTList => Data is []Value (cells share their backing array, so
//     indexed assignment through the environment mutates in place)
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Primitive constructors.
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Text(s string) Value   { return Value{Tag: VTText, Data: s} }
func List(xs []Value) Value { return Value{Tag: VTList, Data: xs} }

// AsInt returns the int64 payload; callers must have checked Tag.
func (v Value) AsInt() int64 { return v.Data.(int64) }

// AsText returns the string payload; callers must have checked Tag.
func (v Value) AsText() string { return v.Data.(string) }

// AsList returns the element slice; callers must have checked Tag.
func (v Value) AsList() []Value { return v.Data.([]Value) }

// Depth reports the nesting level of a value: 0 for integers and text,
// 1 + the maximum element depth for a list. An empty list has depth 1.
func (v Value) Depth() int {
	if v.Tag != VTList {
		return 0
	}
	max := 0
	for _, e := range v.AsList() {
		if d := e.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// String renders the literal representation used by print: bare digits for
// integers, double-quoted text, and bracketed comma-separated lists.
func (v Value) String() string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case VTText:
		return strconv.Quote(v.AsText())
	case VTList:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.AsList() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
		b.WriteByte(']')
		return b.String()
	default:
		return "<unknown>"
	}
}

// Equal reports deep structural equality between two values.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTInt:
		return a.AsInt() == b.AsInt()
	case VTText:
		return a.AsText() == b.AsText()
	case VTList:
		ax, bx := a.AsList(), b.AsList()
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !Equal(ax[i], bx[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
