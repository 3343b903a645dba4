package table

import (
	"github.com/gofrs/uuid"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

// table is the column-major Table implementation. Cells are never mutated
// after construction - every operation produces a fresh table.
type table struct {
	id     string
	schema tabula.Schema
	cols   [][]tabula.Value
	nrows  int
}

// createTable assembles a table around already-validated cell storage
func createTable(s tabula.Schema, cols [][]tabula.Value, nrows int) (tabula.Table, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &table{id: id.String(), schema: s, cols: cols, nrows: nrows}, nil
}

// FromColumns constructs a Table from column-major cells, one slice per
// Schema column in index order. All slices must share one length, and every
// cell must be the missing marker or a Value of its column's Kind. The
// input slices are copied, so the caller may reuse them.
func FromColumns(s tabula.Schema, cols [][]tabula.Value) (tabula.Table, error) {
	if len(cols) != s.NumColumns() {
		return nil, errors.IncompatibleSchemaError{Reason: "Number of column slices does not match Schema"}
	}
	nrows := 0
	if len(cols) > 0 {
		nrows = len(cols[0])
	}
	names := s.ColumnNames()
	types := s.ColumnTypes()
	stored := make([][]tabula.Value, len(cols))
	for i, col := range cols {
		if len(col) != nrows {
			return nil, errors.IncompatibleSchemaError{Reason: "Column " + names[i] + " does not match the Table row count"}
		}
		stored[i] = make([]tabula.Value, nrows)
		for j, cell := range col {
			if err := checkCell(names[i], types[i], cell); err != nil {
				return nil, err
			}
			stored[i][j] = cell
		}
	}
	return createTable(s.Clone(), stored, nrows)
}

// FromRows constructs a Table from row-major cells, one Value per Schema
// column in index order. Cell requirements match FromColumns.
func FromRows(s tabula.Schema, rows [][]tabula.Value) (tabula.Table, error) {
	b := CreateBuilder(s)
	for _, row := range rows {
		if err := b.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// checkCell verifies that a cell may be stored in a column of the given type
func checkCell(colName string, colType tabula.ColumnType, cell tabula.Value) error {
	if cell.Kind() != colType.Kind() {
		return errors.IncompatibleKindError{
			Name:     colName,
			Expected: colType.Kind().ToString(),
			Actual:   cell.Kind().ToString(),
		}
	}
	if cell.IsMissing() {
		return nil
	}
	if ct, ok := colType.(*tabula.CategoricalColumnType); ok && !ct.HasLevel(cell.Text()) {
		return errors.UnknownLevelError{Name: colName, Label: cell.Text()}
	}
	return nil
}

// ID returns the unique identifier of this snapshot
func (t *table) ID() string {
	return t.id
}

// Schema returns the Schema of this Table
func (t *table) Schema() tabula.Schema {
	return t.schema
}

// NumRows returns the number of rows in this Table
func (t *table) NumRows() int {
	return t.nrows
}

// Cell returns the value at the given column and row position
func (t *table) Cell(colName string, row int) (tabula.Value, error) {
	col, err := t.schema.GetColumn(colName)
	if err != nil {
		return tabula.Value{}, err
	}
	if row < 0 || row >= t.nrows {
		return tabula.Value{}, errors.RowOutOfBoundsError{Row: row, NumRows: t.nrows}
	}
	return t.cols[col.Index()][row], nil
}

// Row returns a read-only view of the given row
func (t *table) Row(row int) tabula.Row {
	return &rowView{t: t, row: row}
}

// ForEachRow iterates over the rows of this Table in order
func (t *table) ForEachRow(fn func(row int, r tabula.Row) error) error {
	for i := 0; i < t.nrows; i++ {
		if err := fn(i, &rowView{t: t, row: i}); err != nil {
			return err
		}
	}
	return nil
}

// ColumnValues returns a copy of the cells of the given column, in row order
func (t *table) ColumnValues(colName string) ([]tabula.Value, error) {
	col, err := t.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	cells := make([]tabula.Value, t.nrows)
	copy(cells, t.cols[col.Index()])
	return cells, nil
}

// Gather returns a new Table containing the given rows, in the given order.
// An index may appear more than once.
func (t *table) Gather(indices []int) (tabula.Table, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= t.nrows {
			return nil, errors.RowOutOfBoundsError{Row: idx, NumRows: t.nrows}
		}
	}
	cols := make([][]tabula.Value, len(t.cols))
	for i, col := range t.cols {
		cols[i] = make([]tabula.Value, len(indices))
		for j, idx := range indices {
			cols[i][j] = col[idx]
		}
	}
	return createTable(t.schema.Clone(), cols, len(indices))
}
