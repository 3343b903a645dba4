// Package memory builds Tables from native Go values, for callers which
// already hold their data in memory.
package memory

import (
	"fmt"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
	"github.com/go-tabula/tabula/table"
)

// Load constructs a Table from row-major native values, one value per
// Schema column in index order. nil becomes the missing marker; other
// values must coerce to the declared column kind (numeric columns accept
// any Go numeric type).
func Load(s tabula.Schema, rows [][]interface{}) (tabula.Table, error) {
	names := s.ColumnNames()
	types := s.ColumnTypes()
	b := table.CreateBuilder(s)
	for _, row := range rows {
		if len(row) != len(names) {
			return nil, errors.IncompatibleSchemaError{Reason: "Row width does not match Schema"}
		}
		cells := make([]tabula.Value, len(row))
		for i, v := range row {
			cell, err := coerce(names[i], types[i], v)
			if err != nil {
				return nil, err
			}
			cells[i] = cell
		}
		if err := b.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// LoadRecords constructs a Table from one map per row. Absent keys and nil
// values become the missing marker; map keys outside the Schema are
// ignored.
func LoadRecords(s tabula.Schema, records []map[string]interface{}) (tabula.Table, error) {
	names := s.ColumnNames()
	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		row := make([]interface{}, len(names))
		for j, name := range names {
			row[j] = rec[name]
		}
		rows[i] = row
	}
	return Load(s, rows)
}

// coerce converts one native value to a cell of the given column type
func coerce(colName string, colType tabula.ColumnType, v interface{}) (tabula.Value, error) {
	if v == nil {
		return tabula.MissingValue(colType.Kind()), nil
	}
	switch colType.Kind() {
	case tabula.KindNumeric:
		switch n := v.(type) {
		case float64:
			return tabula.NumericValue(n), nil
		case float32:
			return tabula.NumericValue(float64(n)), nil
		case int:
			return tabula.NumericValue(float64(n)), nil
		case int32:
			return tabula.NumericValue(float64(n)), nil
		case int64:
			return tabula.NumericValue(float64(n)), nil
		}
	case tabula.KindText:
		if s, ok := v.(string); ok {
			return tabula.TextValue(s), nil
		}
	case tabula.KindBool:
		if b, ok := v.(bool); ok {
			return tabula.BoolValue(b), nil
		}
	case tabula.KindCategorical:
		if s, ok := v.(string); ok {
			return tabula.CategoricalValue(s), nil
		}
	}
	return tabula.Value{}, errors.IncompatibleKindError{
		Name:     colName,
		Expected: colType.Kind().ToString(),
		Actual:   fmt.Sprintf("%T", v),
	}
}
