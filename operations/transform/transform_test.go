package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
)

func TestFilter(t *testing.T) {
	s := mustSchema(t, "x", &tabula.NumericColumnType{})
	tbl := mustTable(t, s, [][]tabula.Value{
		{num(1)}, {noNum()}, {num(3)}, {num(4)},
	})

	out, err := tabula.Apply(tbl, Filter(func(r tabula.Row) (bool, error) {
		if r.IsMissing("x") {
			return false, nil
		}
		x, err := r.GetFloat64("x")
		if err != nil {
			return false, err
		}
		return x >= 3, nil
	}))
	require.Nil(t, err)
	require.Equal(t, 2, out.NumRows())
	require.Equal(t, 4, tbl.NumRows())
}

func TestWithColumnDerivesCells(t *testing.T) {
	s := mustSchema(t, "x", &tabula.NumericColumnType{})
	tbl := mustTable(t, s, [][]tabula.Value{
		{num(2)}, {noNum()},
	})

	out, err := tabula.Apply(tbl, WithColumn("x_missing", &tabula.BoolColumnType{}, func(r tabula.Row) (tabula.Value, error) {
		return tabula.BoolValue(r.IsMissing("x")), nil
	}))
	require.Nil(t, err)
	require.Equal(t, []string{"x", "x_missing"}, out.Schema().ColumnNames())
	flags := columnCells(t, out, "x_missing")
	require.False(t, flags[0].Bool())
	require.True(t, flags[1].Bool())

	// a duplicate name is rejected up front
	_, err = tabula.Apply(tbl, WithColumn("x", &tabula.BoolColumnType{}, func(r tabula.Row) (tabula.Value, error) {
		return tabula.BoolValue(false), nil
	}))
	require.NotNil(t, err)
}

func TestRenameAndRemoveColumn(t *testing.T) {
	s := mustSchema(t,
		"a", &tabula.TextColumnType{},
		"b", &tabula.NumericColumnType{},
	)
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("x"), num(1)},
	})

	out, err := tabula.Apply(tbl, RenameColumn("a", "renamed"), RemoveColumn("b"))
	require.Nil(t, err)
	require.Equal(t, []string{"renamed"}, out.Schema().ColumnNames())
	require.Equal(t, "x", columnCells(t, out, "renamed")[0].Text())

	// the source keeps its naming
	require.True(t, tbl.Schema().HasColumn("a"))

	_, err = tabula.Apply(tbl, RemoveColumn("nope"))
	require.NotNil(t, err)
}

func TestApplyComposesStages(t *testing.T) {
	s := mustSchema(t,
		"grp", &tabula.TextColumnType{},
		"x", &tabula.NumericColumnType{},
	)
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("a"), num(1)},
		{txt("a"), num(100)},
		{txt("b"), num(2)},
	})

	out, err := tabula.Apply(tbl,
		Filter(func(r tabula.Row) (bool, error) {
			x, err := r.GetFloat64("x")
			return err == nil && x < 50, nil
		}),
		Summarize([]string{"grp"}, tabula.Aggregation{Output: "total", Reduction: tabula.Sum, Column: "x"}),
	)
	require.Nil(t, err)
	require.Equal(t, 2, out.NumRows())
	totals := columnCells(t, out, "total")
	require.Equal(t, 1.0, totals[0].Float64())
	require.Equal(t, 2.0, totals[1].Float64())
}
