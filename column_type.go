package tabula

import "fmt"

// Kind enumerates the element kinds a Column may be declared with. Every
// cell of a Column holds either a Value of the Column's Kind, or the
// missing marker.
type Kind uint8

const (
	// KindNumeric indicates a column of float64 values
	KindNumeric Kind = iota
	// KindText indicates a column of string values
	KindText
	// KindBool indicates a column of boolean values
	KindBool
	// KindCategorical indicates a column of labels drawn from a level set
	KindCategorical
)

// ToString produces a string representation of a Kind
func (k Kind) ToString() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// ColumnType is an interface which is implemented to define a supported
// column type. Tabula provides one built-in type per Kind.
type ColumnType interface {
	Kind() Kind              // Kind returns the element kind of this column type
	ToString(v Value) string // ToString produces a string representation of a value of this type
}

// NumericColumnType is a column type which stores float64 values
type NumericColumnType struct{}

// Kind of a NumericColumnType
func (b *NumericColumnType) Kind() Kind {
	return KindNumeric
}

// ToString produces a string representation of a NumericColumnType value
func (b *NumericColumnType) ToString(v Value) string {
	if v.IsMissing() {
		return "NA"
	}
	return fmt.Sprintf("%g", v.Float64())
}

// TextColumnType is a column type which stores string values
type TextColumnType struct{}

// Kind of a TextColumnType
func (b *TextColumnType) Kind() Kind {
	return KindText
}

// ToString produces a string representation of a TextColumnType value
func (b *TextColumnType) ToString(v Value) string {
	if v.IsMissing() {
		return "NA"
	}
	return fmt.Sprintf("%q", v.Text())
}

// BoolColumnType is a column type which stores boolean values
type BoolColumnType struct{}

// Kind of a BoolColumnType
func (b *BoolColumnType) Kind() Kind {
	return KindBool
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v Value) string {
	if v.IsMissing() {
		return "NA"
	}
	return fmt.Sprintf("%t", v.Bool())
}

// CategoricalColumnType is a column type which stores labels drawn from a
// level set. An empty Levels slice declares an open level set, accepting
// any label.
type CategoricalColumnType struct {
	Levels []string
}

// Kind of a CategoricalColumnType
func (b *CategoricalColumnType) Kind() Kind {
	return KindCategorical
}

// ToString produces a string representation of a CategoricalColumnType value
func (b *CategoricalColumnType) ToString(v Value) string {
	if v.IsMissing() {
		return "NA"
	}
	return fmt.Sprintf("%q", v.Text())
}

// HasLevel returns true iff label belongs to this type's level set
func (b *CategoricalColumnType) HasLevel(label string) bool {
	if len(b.Levels) == 0 {
		return true
	}
	for _, l := range b.Levels {
		if l == label {
			return true
		}
	}
	return false
}
