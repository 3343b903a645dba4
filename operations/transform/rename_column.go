package transform

import (
	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/table"
)

// RenameColumn renames an existing column
func RenameColumn(oldName string, newName string) tabula.Operation {
	return func(t tabula.Table) (tabula.Table, error) {
		newSchema, err := t.Schema().Clone().RenameColumn(oldName, newName)
		if err != nil {
			return nil, err
		}
		// cell storage is unchanged; only the schema differs
		cols := make([][]tabula.Value, 0, newSchema.NumColumns())
		for _, name := range t.Schema().ColumnNames() {
			cells, err := t.ColumnValues(name)
			if err != nil {
				return nil, err
			}
			cols = append(cols, cells)
		}
		return table.FromColumns(newSchema, cols)
	}
}
