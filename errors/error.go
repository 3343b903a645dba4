package errors

import (
	"fmt"
)

// UnknownColumnError occurs when an operation references a column which is
// absent from its Table
type UnknownColumnError struct{ Name string }

// Error returns a textual representation of this UnknownColumnError
func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// DuplicateColumnError occurs when a column name would appear twice within
// one Schema
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// IncompatibleKindError occurs when a join correspondence or a reduction is
// applied to a column of an incomparable or unsupported kind
type IncompatibleKindError struct {
	Name     string
	Expected string
	Actual   string
}

// Error returns a textual representation of this IncompatibleKindError
func (e IncompatibleKindError) Error() string {
	return fmt.Sprintf("Column %s has kind %s, expected %s", e.Name, e.Actual, e.Expected)
}

// UnknownReductionError occurs when an Aggregation names a reduction which
// does not exist
type UnknownReductionError struct{ Name string }

// Error returns a textual representation of this UnknownReductionError
func (e UnknownReductionError) Error() string {
	return fmt.Sprintf("Unknown reduction %s", e.Name)
}

// InvalidSpecError occurs when an Aggregation or JoinSpec is malformed.
// It wraps the underlying validation failure(s), which are reported before
// any group or row pair is processed.
type InvalidSpecError struct{ Err error }

// Error returns a textual representation of this InvalidSpecError
func (e InvalidSpecError) Error() string {
	return fmt.Sprintf("Invalid spec: %v", e.Err)
}

// Unwrap returns the underlying validation failure(s)
func (e InvalidSpecError) Unwrap() error {
	return e.Err
}

// IncompatibleSchemaError occurs when two Schemas which are required to be
// equivalent are not
type IncompatibleSchemaError struct{ Reason string }

// Error returns a textual representation of this IncompatibleSchemaError
func (e IncompatibleSchemaError) Error() string {
	return e.Reason
}

// MissingValueError occurs when a typed getter is used on a missing cell
type MissingValueError struct{ Name string }

// Error returns a textual representation of this MissingValueError
func (e MissingValueError) Error() string {
	return fmt.Sprintf("Value for column %s is missing", e.Name)
}

// UnknownLevelError occurs when a categorical cell holds a label outside
// its column's declared level set
type UnknownLevelError struct {
	Name  string
	Label string
}

// Error returns a textual representation of this UnknownLevelError
func (e UnknownLevelError) Error() string {
	return fmt.Sprintf("Label %q does not belong to the level set of column %s", e.Label, e.Name)
}

// RowOutOfBoundsError occurs when a row position is outside a Table
type RowOutOfBoundsError struct {
	Row     int
	NumRows int
}

// Error returns a textual representation of this RowOutOfBoundsError
func (e RowOutOfBoundsError) Error() string {
	return fmt.Sprintf("Row %d is out of bounds for Table with %d rows", e.Row, e.NumRows)
}
