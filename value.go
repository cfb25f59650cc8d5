package csvloader

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies which variant of a Value is active.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single typed field. Exactly one of the variants is active, as reported by Kind.
// The zero Value is null.
type Value struct {
	kind Kind
	num  uint64
	str  string
}

// Row is the ordered sequence of values of one line.
type Row []Value

// Grid is the ordered sequence of rows of one input.
type Grid []Row

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// IntValue returns an integer value.
func IntValue(n int64) Value { return Value{kind: KindInt, num: uint64(n)} }

// FloatValue returns a floating point value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, num: math.Float64bits(f)} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer and true when v is an integer.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return int64(v.num), true
}

// Float returns the float and true when v is a float.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

// Str returns the string and true when v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Interface returns v as nil, int64, float64 or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return int64(v.num)
	case KindFloat:
		return math.Float64frombits(v.num)
	case KindString:
		return v.str
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same variant and value.
// Floats compare by value, so 0 and -0 are equal and NaN equals nothing.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return math.Float64frombits(v.num) == math.Float64frombits(o.num)
	default:
		return v.str == o.str
	}
}

// String formats v for diagnostics: null, the number, or the quoted string.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	default:
		return "null"
	}
}

// MarshalJSON encodes v as a JSON null, number or string.
// Non-finite floats have no JSON form and encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return strconv.AppendInt(nil, int64(v.num), 10), nil
	case KindFloat:
		f := math.Float64frombits(v.num)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return []byte("null"), nil
		}
		return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
	case KindString:
		return json.Marshal(v.str)
	default:
		return []byte("null"), nil
	}
}

// Equal reports whether both rows hold equal values in the same order.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether both grids hold equal rows in the same order.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if !g[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
