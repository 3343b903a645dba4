package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-tabula/tabula"
)

func TestPartitionCoversEveryRowExactlyOnce(t *testing.T) {
	s := mustSchema(t,
		"city", &tabula.TextColumnType{},
		"temp", &tabula.NumericColumnType{},
	)
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("oslo"), num(1)},
		{txt("lima"), num(24)},
		{txt("oslo"), num(3)},
		{txt("pune"), num(31)},
		{txt("lima"), num(22)},
		{txt("oslo"), num(-2)},
	})

	g, err := Partition(tbl, "city")
	require.Nil(t, err)

	seen := make(map[int]int)
	total := 0
	for _, grp := range g.Groups() {
		for _, idx := range grp.Indices {
			seen[idx]++
			total++
		}
	}
	require.Equal(t, tbl.NumRows(), total)
	for idx, n := range seen {
		require.Equal(t, 1, n, "row %d appears in more than one group", idx)
	}
}

func TestPartitionFirstAppearanceOrder(t *testing.T) {
	s := mustSchema(t, "city", &tabula.TextColumnType{})
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("oslo")}, {txt("lima")}, {txt("oslo")}, {txt("pune")},
	})

	g, err := Partition(tbl, "city")
	require.Nil(t, err)
	require.Equal(t, 3, g.NumGroups())
	require.Equal(t, "oslo", g.Groups()[0].Key[0].Text())
	require.Equal(t, "lima", g.Groups()[1].Key[0].Text())
	require.Equal(t, "pune", g.Groups()[2].Key[0].Text())
	require.Equal(t, []int{0, 2}, g.Groups()[0].Indices)
}

func TestPartitionMissingKeysFormTheirOwnGroup(t *testing.T) {
	s := mustSchema(t, "city", &tabula.TextColumnType{})
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("oslo")}, {noTxt()}, {txt("oslo")}, {noTxt()},
	})

	g, err := Partition(tbl, "city")
	require.Nil(t, err)
	require.Equal(t, 2, g.NumGroups())
	require.True(t, g.Groups()[1].Key[0].IsMissing())
	require.Equal(t, []int{1, 3}, g.Groups()[1].Indices)
}

func TestPartitionMultipleColumns(t *testing.T) {
	s := mustSchema(t,
		"a", &tabula.TextColumnType{},
		"b", &tabula.NumericColumnType{},
	)
	tbl := mustTable(t, s, [][]tabula.Value{
		{txt("x"), num(1)},
		{txt("x"), num(2)},
		{txt("x"), num(1)},
		{txt("y"), num(1)},
	})

	g, err := Partition(tbl, "a", "b")
	require.Nil(t, err)
	require.Equal(t, 3, g.NumGroups())
	require.Equal(t, []int{0, 2}, g.Groups()[0].Indices)
}

func TestPartitionEmptyTable(t *testing.T) {
	s := mustSchema(t, "city", &tabula.TextColumnType{})
	tbl := mustTable(t, s, nil)

	g, err := Partition(tbl, "city")
	require.Nil(t, err)
	require.Equal(t, 0, g.NumGroups())
}

func TestPartitionValidation(t *testing.T) {
	s := mustSchema(t, "city", &tabula.TextColumnType{})
	tbl := mustTable(t, s, nil)

	_, err := Partition(tbl)
	require.NotNil(t, err)

	_, err = Partition(tbl, "absent")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "absent")
}

func TestPartitionDoesNotMutateSource(t *testing.T) {
	tbl := expressionTable(t)
	before := columnCells(t, tbl, "ESR1")

	_, err := Partition(tbl, "ER_status")
	require.Nil(t, err)

	after := columnCells(t, tbl, "ESR1")
	require.Equal(t, before, after)
	require.Equal(t, 2, tbl.NumRows())
}
