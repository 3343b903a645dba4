package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/schema"
	"github.com/go-tabula/tabula/table"
)

func num(v float64) tabula.Value  { return tabula.NumericValue(v) }
func txt(v string) tabula.Value   { return tabula.TextValue(v) }
func boolean(v bool) tabula.Value { return tabula.BoolValue(v) }
func noNum() tabula.Value         { return tabula.MissingValue(tabula.KindNumeric) }
func noTxt() tabula.Value         { return tabula.MissingValue(tabula.KindText) }

// mustSchema builds a Schema from alternating name, type pairs
func mustSchema(t *testing.T, cols ...interface{}) tabula.Schema {
	s := schema.CreateSchema()
	var err error
	for i := 0; i < len(cols); i += 2 {
		s, err = s.CreateColumn(cols[i].(string), cols[i+1].(tabula.ColumnType))
		require.Nil(t, err)
	}
	return s
}

func mustTable(t *testing.T, s tabula.Schema, rows [][]tabula.Value) tabula.Table {
	tbl, err := table.FromRows(s, rows)
	require.Nil(t, err)
	return tbl
}

// expressionTable is the ER_status / ESR1 fixture used across grouping and
// aggregation tests
func expressionTable(t *testing.T) tabula.Table {
	s := mustSchema(t,
		"ER_status", &tabula.CategoricalColumnType{Levels: []string{"pos", "neg"}},
		"ESR1", &tabula.NumericColumnType{},
	)
	return mustTable(t, s, [][]tabula.Value{
		{tabula.CategoricalValue("pos"), num(10.6)},
		{tabula.CategoricalValue("neg"), num(6.21)},
	})
}

// columnCells fetches a column or fails the test
func columnCells(t *testing.T, tbl tabula.Table, colName string) []tabula.Value {
	cells, err := tbl.ColumnValues(colName)
	require.Nil(t, err)
	return cells
}
