package tabula

import (
	"encoding/binary"
	"math"
	"strings"
)

// Value is a single cell of a Table: a tagged union over the supported
// column kinds, plus an explicit missing marker. The missing marker is
// distinct from every valid value and propagates through reductions as
// "unknown" unless a caller requests missing-exclusion.
type Value struct {
	kind    Kind
	missing bool
	num     float64
	str     string
	boolean bool
}

// NumericValue returns a numeric Value
func NumericValue(v float64) Value {
	return Value{kind: KindNumeric, num: v}
}

// TextValue returns a text Value
func TextValue(v string) Value {
	return Value{kind: KindText, str: v}
}

// BoolValue returns a boolean Value
func BoolValue(v bool) Value {
	return Value{kind: KindBool, boolean: v}
}

// CategoricalValue returns a categorical Value with the given label
func CategoricalValue(label string) Value {
	return Value{kind: KindCategorical, str: label}
}

// MissingValue returns the missing marker for the given Kind
func MissingValue(kind Kind) Value {
	return Value{kind: kind, missing: true}
}

// Kind returns the element kind of this Value
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing returns true iff this Value is the missing marker
func (v Value) IsMissing() bool {
	return v.missing
}

// Float64 returns the numeric payload of this Value. The result is
// meaningless for missing or non-numeric Values.
func (v Value) Float64() float64 {
	return v.num
}

// Text returns the string payload of this Value. The result is meaningless
// for missing Values or Values which are neither text nor categorical.
func (v Value) Text() string {
	return v.str
}

// Bool returns the boolean payload of this Value. The result is meaningless
// for missing or non-boolean Values.
func (v Value) Bool() bool {
	return v.boolean
}

// Equals returns true iff this and another Value are of the same Kind and
// hold equal payloads. Two missing markers of the same Kind are equal - the
// missing marker is a key value equal only to itself.
func (v Value) Equals(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.missing || o.missing {
		return v.missing && o.missing
	}
	switch v.kind {
	case KindNumeric:
		return v.num == o.num
	case KindBool:
		return v.boolean == o.boolean
	default:
		return v.str == o.str
	}
}

// Less returns true iff this Value sorts strictly before another Value of
// the same Kind. Missing markers sort before every valid value.
func (v Value) Less(o Value) bool {
	if v.missing || o.missing {
		return v.missing && !o.missing
	}
	switch v.kind {
	case KindNumeric:
		return v.num < o.num
	case KindBool:
		return !v.boolean && o.boolean
	default:
		return v.str < o.str
	}
}

// AppendKey appends a canonical byte encoding of this Value to buf, for use
// in hashed keying. Encodings are prefix-free across multi-column keys, so
// distinct key tuples never share an encoding.
func (v Value) AppendKey(buf []byte) []byte {
	buf = append(buf, byte(v.kind))
	if v.missing {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	switch v.kind {
	case KindNumeric:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(v.num))
		return append(buf, b[:]...)
	case KindBool:
		if v.boolean {
			return append(buf, 1)
		}
		return append(buf, 0)
	default:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(len(v.str)))
		buf = append(buf, b[:]...)
		return append(buf, v.str...)
	}
}

// ToString produces a string representation of this Value
func (v Value) ToString() string {
	if v.missing {
		return "NA"
	}
	switch v.kind {
	case KindNumeric:
		return (&NumericColumnType{}).ToString(v)
	case KindBool:
		return (&BoolColumnType{}).ToString(v)
	default:
		return (&TextColumnType{}).ToString(v)
	}
}

// GroupKey is an ordered tuple of Values, one per grouping column,
// identifying a partition of a Table's rows. Equality is element-wise.
type GroupKey []Value

// Equals returns true iff this and another GroupKey are element-wise equal
func (k GroupKey) Equals(o GroupKey) bool {
	if len(k) != len(o) {
		return false
	}
	for i := range k {
		if !k[i].Equals(o[i]) {
			return false
		}
	}
	return true
}

// AppendKey appends the canonical byte encoding of every Value in this
// GroupKey to buf
func (k GroupKey) AppendKey(buf []byte) []byte {
	for _, v := range k {
		buf = v.AppendKey(buf)
	}
	return buf
}

// ToString produces a string representation of this GroupKey
func (k GroupKey) ToString() string {
	var res strings.Builder
	res.WriteString("(")
	for i, v := range k {
		if i > 0 {
			res.WriteString(", ")
		}
		res.WriteString(v.ToString())
	}
	res.WriteString(")")
	return res.String()
}
