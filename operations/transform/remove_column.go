package transform

import (
	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/table"
)

// RemoveColumn removes existing columns
func RemoveColumn(colNames ...string) tabula.Operation {
	return func(t tabula.Table) (tabula.Table, error) {
		newSchema := t.Schema().Clone()
		var err error
		for _, name := range colNames {
			if newSchema, err = newSchema.RemoveColumn(name); err != nil {
				return nil, err
			}
		}
		cols := make([][]tabula.Value, 0, newSchema.NumColumns())
		for _, name := range newSchema.ColumnNames() {
			cells, err := t.ColumnValues(name)
			if err != nil {
				return nil, err
			}
			cols = append(cols, cells)
		}
		return table.FromColumns(newSchema, cols)
	}
}
