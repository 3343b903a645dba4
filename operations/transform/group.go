package transform

import (
	"fmt"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

// Group is one partition of a Table's rows: the rows sharing one GroupKey,
// identified by their positions in the source Table, in source order.
type Group struct {
	Key     tabula.GroupKey
	Indices []int
}

// Grouping is the result of partitioning a Table by a set of columns. It
// retains the source Table so that aggregations can be applied to it.
type Grouping struct {
	table  tabula.Table
	cols   []string
	groups []Group
}

// Table returns the source Table of this Grouping
func (g *Grouping) Table() tabula.Table {
	return g.table
}

// Columns returns the grouping column names of this Grouping
func (g *Grouping) Columns() []string {
	cols := make([]string, len(g.cols))
	copy(cols, g.cols)
	return cols
}

// Groups returns the groups of this Grouping, in order of first appearance
// of each distinct key in the source Table
func (g *Grouping) Groups() []Group {
	return g.groups
}

// NumGroups returns the number of groups in this Grouping
func (g *Grouping) NumGroups() int {
	return len(g.groups)
}

// Partition splits a Table's rows into disjoint groups keyed by the given
// columns. Every row belongs to exactly one group, so the union of all
// group index sets is the full row index set - rows whose grouping values
// are missing form their own group rather than being dropped, with the
// missing marker acting as a key value equal only to itself. Groups are
// produced in order of first appearance of each distinct key, and a Table
// with zero rows yields zero groups. The source Table is never mutated.
func Partition(t tabula.Table, cols ...string) (*Grouping, error) {
	if len(cols) == 0 {
		return nil, errors.InvalidSpecError{Err: fmt.Errorf("at least one grouping column is required")}
	}
	cells, err := keyColumns(t, cols)
	if err != nil {
		return nil, err
	}
	idx := createKeyIndex()
	groups := []Group{}
	for row := 0; row < t.NumRows(); row++ {
		key := keyAt(cells, row)
		slot := idx.find(key)
		if slot < 0 {
			idx.add(key)
			groups = append(groups, Group{Key: key, Indices: []int{row}})
			continue
		}
		groups[slot].Indices = append(groups[slot].Indices, row)
	}
	byCols := make([]string, len(cols))
	copy(byCols, cols)
	return &Grouping{table: t, cols: byCols, groups: groups}, nil
}
