package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/schema"
)

func testSchema(t *testing.T) tabula.Schema {
	s := schema.CreateSchema()
	_, err := s.CreateColumn("name", &tabula.TextColumnType{})
	require.Nil(t, err)
	_, err = s.CreateColumn("score", &tabula.NumericColumnType{})
	require.Nil(t, err)
	return s
}

func TestFromRows(t *testing.T) {
	tbl, err := FromRows(testSchema(t), [][]tabula.Value{
		{tabula.TextValue("alice"), tabula.NumericValue(1.5)},
		{tabula.TextValue("bob"), tabula.MissingValue(tabula.KindNumeric)},
	})
	require.Nil(t, err)
	require.Equal(t, 2, tbl.NumRows())
	require.NotEmpty(t, tbl.ID())

	v, err := tbl.Cell("name", 0)
	require.Nil(t, err)
	require.Equal(t, "alice", v.Text())

	v, err = tbl.Cell("score", 1)
	require.Nil(t, err)
	require.True(t, v.IsMissing())

	_, err = tbl.Cell("absent", 0)
	require.NotNil(t, err)
	_, err = tbl.Cell("name", 2)
	require.NotNil(t, err)
}

func TestFromColumnsRejectsKindMismatch(t *testing.T) {
	_, err := FromColumns(testSchema(t), [][]tabula.Value{
		{tabula.TextValue("alice")},
		{tabula.TextValue("not a number")},
	})
	require.NotNil(t, err)
}

func TestFromColumnsRejectsRaggedColumns(t *testing.T) {
	_, err := FromColumns(testSchema(t), [][]tabula.Value{
		{tabula.TextValue("alice"), tabula.TextValue("bob")},
		{tabula.NumericValue(1)},
	})
	require.NotNil(t, err)
}

func TestCategoricalLevels(t *testing.T) {
	s := schema.CreateSchema()
	_, err := s.CreateColumn("er_status", &tabula.CategoricalColumnType{Levels: []string{"pos", "neg"}})
	require.Nil(t, err)

	_, err = FromRows(s, [][]tabula.Value{{tabula.CategoricalValue("pos")}})
	require.Nil(t, err)

	_, err = FromRows(s, [][]tabula.Value{{tabula.CategoricalValue("unknown")}})
	require.NotNil(t, err)

	// the missing marker is always storable
	_, err = FromRows(s, [][]tabula.Value{{tabula.MissingValue(tabula.KindCategorical)}})
	require.Nil(t, err)
}

func TestGather(t *testing.T) {
	tbl, err := FromRows(testSchema(t), [][]tabula.Value{
		{tabula.TextValue("a"), tabula.NumericValue(1)},
		{tabula.TextValue("b"), tabula.NumericValue(2)},
		{tabula.TextValue("c"), tabula.NumericValue(3)},
	})
	require.Nil(t, err)

	picked, err := tbl.Gather([]int{2, 0, 2})
	require.Nil(t, err)
	require.Equal(t, 3, picked.NumRows())
	names := []string{}
	err = picked.ForEachRow(func(row int, r tabula.Row) error {
		name, err := r.GetText("name")
		require.Nil(t, err)
		names = append(names, name)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []string{"c", "a", "c"}, names)

	// the source snapshot is untouched
	require.Equal(t, 3, tbl.NumRows())
	v, err := tbl.Cell("name", 0)
	require.Nil(t, err)
	require.Equal(t, "a", v.Text())

	_, err = tbl.Gather([]int{3})
	require.NotNil(t, err)
}

func TestRowAccessors(t *testing.T) {
	tbl, err := FromRows(testSchema(t), [][]tabula.Value{
		{tabula.TextValue("alice"), tabula.MissingValue(tabula.KindNumeric)},
	})
	require.Nil(t, err)

	r := tbl.Row(0)
	require.False(t, r.IsMissing("name"))
	require.True(t, r.IsMissing("score"))
	require.False(t, r.IsMissing("absent"))

	_, err = r.GetFloat64("score")
	require.NotNil(t, err)
	_, err = r.GetFloat64("name")
	require.NotNil(t, err)
	_, err = r.GetBool("name")
	require.NotNil(t, err)

	name, err := r.GetText("name")
	require.Nil(t, err)
	require.Equal(t, "alice", name)
}

func TestColumnValuesReturnsCopy(t *testing.T) {
	tbl, err := FromRows(testSchema(t), [][]tabula.Value{
		{tabula.TextValue("alice"), tabula.NumericValue(1)},
	})
	require.Nil(t, err)

	cells, err := tbl.ColumnValues("score")
	require.Nil(t, err)
	cells[0] = tabula.NumericValue(99)

	v, err := tbl.Cell("score", 0)
	require.Nil(t, err)
	require.Equal(t, 1.0, v.Float64())
}

func TestBuilderRejectsWrongWidth(t *testing.T) {
	b := CreateBuilder(testSchema(t))
	err := b.AppendRow(tabula.TextValue("alice"))
	require.NotNil(t, err)
}

func TestEmptyTable(t *testing.T) {
	tbl, err := FromRows(testSchema(t), nil)
	require.Nil(t, err)
	require.Equal(t, 0, tbl.NumRows())
}
