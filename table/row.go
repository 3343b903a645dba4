package table

import (
	"strings"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

// rowView is a read-only window onto one row of a table. It holds no cell
// data of its own.
type rowView struct {
	t   *table
	row int
}

// Schema returns the schema for this row
func (r *rowView) Schema() tabula.Schema {
	return r.t.schema
}

// IsMissing returns true iff the given column value is missing in this row.
// If the column does not exist, this function returns false.
func (r *rowView) IsMissing(colName string) bool {
	v, err := r.Get(colName)
	if err != nil {
		return false
	}
	return v.IsMissing()
}

// Get returns the value of any column, if it exists
func (r *rowView) Get(colName string) (tabula.Value, error) {
	return r.t.Cell(colName, r.row)
}

// GetFloat64 retrieves a numeric value from the column with the given name,
// failing if it is missing
func (r *rowView) GetFloat64(colName string) (float64, error) {
	v, err := r.get(colName, tabula.KindNumeric)
	if err != nil {
		return 0, err
	}
	return v.Float64(), nil
}

// GetText retrieves a text or categorical value from the column with the
// given name, failing if it is missing
func (r *rowView) GetText(colName string) (string, error) {
	v, err := r.Get(colName)
	if err != nil {
		return "", err
	}
	if v.Kind() != tabula.KindText && v.Kind() != tabula.KindCategorical {
		return "", errors.IncompatibleKindError{
			Name:     colName,
			Expected: tabula.KindText.ToString(),
			Actual:   v.Kind().ToString(),
		}
	}
	if v.IsMissing() {
		return "", errors.MissingValueError{Name: colName}
	}
	return v.Text(), nil
}

// GetBool retrieves a boolean value from the column with the given name,
// failing if it is missing
func (r *rowView) GetBool(colName string) (bool, error) {
	v, err := r.get(colName, tabula.KindBool)
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

func (r *rowView) get(colName string, kind tabula.Kind) (tabula.Value, error) {
	v, err := r.Get(colName)
	if err != nil {
		return tabula.Value{}, err
	}
	if v.Kind() != kind {
		return tabula.Value{}, errors.IncompatibleKindError{
			Name:     colName,
			Expected: kind.ToString(),
			Actual:   v.Kind().ToString(),
		}
	}
	if v.IsMissing() {
		return tabula.Value{}, errors.MissingValueError{Name: colName}
	}
	return v, nil
}

// ToString returns a string representation of this row
func (r *rowView) ToString() string {
	var res strings.Builder
	res.WriteString("{")
	first := true
	_ = r.t.schema.ForEachColumn(func(name string, col tabula.Column) error {
		if !first {
			res.WriteString(", ")
		}
		first = false
		res.WriteString(name)
		res.WriteString(": ")
		res.WriteString(col.Type().ToString(r.t.cols[col.Index()][r.row]))
		return nil
	})
	res.WriteString("}")
	return res.String()
}
