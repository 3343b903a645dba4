package transform

import (
	"github.com/go-tabula/tabula"
)

// Distinct dedupes a Table's rows by the given column subset (every column,
// when none are given), keeping the first occurrence of each distinct
// combination in source order. Distinct is idempotent: applying it twice
// yields the same Table content as applying it once.
func Distinct(colNames ...string) tabula.Operation {
	return func(t tabula.Table) (tabula.Table, error) {
		by := colNames
		if len(by) == 0 {
			by = t.Schema().ColumnNames()
		}
		cells, err := keyColumns(t, by)
		if err != nil {
			return nil, err
		}
		idx := createKeyIndex()
		keep := []int{}
		for row := 0; row < t.NumRows(); row++ {
			key := keyAt(cells, row)
			if idx.find(key) < 0 {
				idx.add(key)
				keep = append(keep, row)
			}
		}
		return t.Gather(keep)
	}
}
