package transform

import (
	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/table"
)

// WithColumn appends a new column with the given name and type, deriving
// each cell from its row via fn. fn may return the missing marker.
func WithColumn(colName string, colType tabula.ColumnType, fn tabula.MapOperation) tabula.Operation {
	return func(t tabula.Table) (tabula.Table, error) {
		newSchema, err := t.Schema().Clone().CreateColumn(colName, colType)
		if err != nil {
			return nil, err
		}
		cols := make([][]tabula.Value, 0, newSchema.NumColumns())
		for _, name := range t.Schema().ColumnNames() {
			cells, err := t.ColumnValues(name)
			if err != nil {
				return nil, err
			}
			cols = append(cols, cells)
		}
		derived := make([]tabula.Value, t.NumRows())
		err = t.ForEachRow(func(row int, r tabula.Row) error {
			v, err := fn(r)
			if err != nil {
				return err
			}
			derived[row] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		cols = append(cols, derived)
		return table.FromColumns(newSchema, cols)
	}
}
