package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
)

func TestDistinctKeepsFirstOccurrence(t *testing.T) {
	s := mustSchema(t,
		"who", &tabula.TextColumnType{},
		"x", &tabula.NumericColumnType{},
	)
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("mick"), num(1)},
		{txt("john"), num(2)},
		{txt("mick"), num(3)},
		{noTxt(), num(4)},
		{noTxt(), num(5)},
	})

	out, err := tabula.Apply(tbl, Distinct("who"))
	require.Nil(t, err)
	require.Equal(t, 3, out.NumRows())

	// full rows survive; the first occurrence of each key is kept
	xs := columnCells(t, out, "x")
	require.Equal(t, 1.0, xs[0].Float64())
	require.Equal(t, 2.0, xs[1].Float64())
	require.Equal(t, 4.0, xs[2].Float64())
}

func TestDistinctIsIdempotent(t *testing.T) {
	s := mustSchema(t, "who", &tabula.TextColumnType{})
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("a")}, {txt("b")}, {txt("a")}, {txt("b")}, {txt("c")},
	})

	once, err := tabula.Apply(tbl, Distinct("who"))
	require.Nil(t, err)
	twice, err := tabula.Apply(once, Distinct("who"))
	require.Nil(t, err)

	require.Equal(t, once.NumRows(), twice.NumRows())
	require.Equal(t, columnCells(t, once, "who"), columnCells(t, twice, "who"))
}

func TestDistinctDefaultsToAllColumns(t *testing.T) {
	s := mustSchema(t,
		"a", &tabula.TextColumnType{},
		"b", &tabula.NumericColumnType{},
	)
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("x"), num(1)},
		{txt("x"), num(1)},
		{txt("x"), num(2)},
	})

	out, err := tabula.Apply(tbl, Distinct())
	require.Nil(t, err)
	require.Equal(t, 2, out.NumRows())
}

func TestDistinctUnknownColumn(t *testing.T) {
	s := mustSchema(t, "a", &tabula.TextColumnType{})
	tbl := mustTable(t, s, nil)
	_, err := tabula.Apply(tbl, Distinct("nope"))
	require.NotNil(t, err)
}
