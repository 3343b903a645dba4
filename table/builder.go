package table

import (
	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

// Builder accumulates rows for a Table under a fixed Schema. A Builder is
// single-use: Build seals the accumulated cells into an immutable Table.
type Builder struct {
	schema tabula.Schema
	names  []string
	types  []tabula.ColumnType
	cols   [][]tabula.Value
	nrows  int
}

// CreateBuilder is a factory for Builders. The given Schema is cloned, so
// later changes to it do not affect the Builder.
func CreateBuilder(s tabula.Schema) *Builder {
	return &Builder{
		schema: s.Clone(),
		names:  s.ColumnNames(),
		types:  s.ColumnTypes(),
		cols:   make([][]tabula.Value, s.NumColumns()),
	}
}

// AppendRow adds one row of cells, one Value per Schema column in index
// order
func (b *Builder) AppendRow(cells ...tabula.Value) error {
	if len(cells) != len(b.cols) {
		return errors.IncompatibleSchemaError{Reason: "Row width does not match Schema"}
	}
	for i, cell := range cells {
		if err := checkCell(b.names[i], b.types[i], cell); err != nil {
			return err
		}
	}
	for i, cell := range cells {
		b.cols[i] = append(b.cols[i], cell)
	}
	b.nrows++
	return nil
}

// NumRows returns the number of rows accumulated so far
func (b *Builder) NumRows() int {
	return b.nrows
}

// Build seals the accumulated rows into a Table
func (b *Builder) Build() (tabula.Table, error) {
	for i := range b.cols {
		if b.cols[i] == nil {
			b.cols[i] = []tabula.Value{}
		}
	}
	return createTable(b.schema, b.cols, b.nrows)
}
