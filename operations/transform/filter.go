package transform

import (
	"github.com/go-tabula/tabula"
)

// Filter retains the rows of a Table for which fn returns true, in source
// order
func Filter(fn tabula.FilterOperation) tabula.Operation {
	return func(t tabula.Table) (tabula.Table, error) {
		keep := make([]int, 0, t.NumRows())
		err := t.ForEachRow(func(row int, r tabula.Row) error {
			ok, err := fn(r)
			if err != nil {
				return err
			}
			if ok {
				keep = append(keep, row)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return t.Gather(keep)
	}
}
