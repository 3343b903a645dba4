package transform

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
	"github.com/go-tabula/tabula/schema"
	"github.com/go-tabula/tabula/table"
)

// rowPair is one output row of a join, identified by its source row
// positions. A position of -1 marks an unmatched side, emitted as missing
// markers.
type rowPair struct {
	left  int
	right int
}

// Join combines two Tables on the given column correspondences under one of
// six policies.
//
// When a left row matches k right rows, the output contains k rows, one per
// match, never deduplicated. Output key columns retain the left table's
// naming; right-side key columns are dropped. Non-key columns sharing a
// name in both inputs are retained on both sides, disambiguated with the
// spec's suffixes ("_left"/"_right" by default). Rows whose key contains a
// missing value never match - they surface as unmatched per policy. Output
// row order follows the left table's row order (the right table's for right
// joins), with matches appended in the other side's original order; full
// joins append right-only rows after all left-originated rows.
func Join(left tabula.Table, right tabula.Table, spec tabula.JoinSpec) (tabula.Table, error) {
	if err := validateJoin(left, right, spec); err != nil {
		return nil, err
	}
	leftKeyCols := make([]string, len(spec.On))
	rightKeyCols := make([]string, len(spec.On))
	for i, c := range spec.On {
		leftKeyCols[i] = c.Left
		rightKeyCols[i] = c.Right
	}
	leftKeys, err := keyColumns(left, leftKeyCols)
	if err != nil {
		return nil, err
	}
	rightKeys, err := keyColumns(right, rightKeyCols)
	if err != nil {
		return nil, err
	}

	if spec.Policy == tabula.SemiJoin || spec.Policy == tabula.AntiJoin {
		idx, _ := buildSideIndex(rightKeys, right.NumRows())
		keep := []int{}
		for row := 0; row < left.NumRows(); row++ {
			key := keyAt(leftKeys, row)
			matched := !keyHasMissing(key) && idx.find(key) >= 0
			if matched == (spec.Policy == tabula.SemiJoin) {
				keep = append(keep, row)
			}
		}
		return left.Gather(keep)
	}

	var pairs []rowPair
	switch spec.Policy {
	case tabula.InnerJoin, tabula.LeftJoin, tabula.FullJoin:
		idx, slotRows := buildSideIndex(rightKeys, right.NumRows())
		rightMatched := make([]bool, right.NumRows())
		for l := 0; l < left.NumRows(); l++ {
			key := keyAt(leftKeys, l)
			var matches []int
			if !keyHasMissing(key) {
				if slot := idx.find(key); slot >= 0 {
					matches = slotRows[slot]
				}
			}
			if len(matches) == 0 {
				if spec.Policy != tabula.InnerJoin {
					pairs = append(pairs, rowPair{left: l, right: -1})
				}
				continue
			}
			for _, r := range matches {
				pairs = append(pairs, rowPair{left: l, right: r})
				rightMatched[r] = true
			}
		}
		if spec.Policy == tabula.FullJoin {
			for r := 0; r < right.NumRows(); r++ {
				if !rightMatched[r] {
					pairs = append(pairs, rowPair{left: -1, right: r})
				}
			}
		}
	case tabula.RightJoin:
		idx, slotRows := buildSideIndex(leftKeys, left.NumRows())
		for r := 0; r < right.NumRows(); r++ {
			key := keyAt(rightKeys, r)
			var matches []int
			if !keyHasMissing(key) {
				if slot := idx.find(key); slot >= 0 {
					matches = slotRows[slot]
				}
			}
			if len(matches) == 0 {
				pairs = append(pairs, rowPair{left: -1, right: r})
				continue
			}
			for _, l := range matches {
				pairs = append(pairs, rowPair{left: l, right: r})
			}
		}
	default:
		return nil, errors.InvalidSpecError{Err: fmt.Errorf("unknown join policy %d", spec.Policy)}
	}

	return assembleJoin(left, right, spec, rightKeys, pairs)
}

// Joined applies Join as a pipeline stage, with the pipeline Table on the
// left
func Joined(right tabula.Table, spec tabula.JoinSpec) tabula.Operation {
	return func(left tabula.Table) (tabula.Table, error) {
		return Join(left, right, spec)
	}
}

// assembleJoin materializes the output Table of a column-appending join
// from its matched row pairs
func assembleJoin(left tabula.Table, right tabula.Table, spec tabula.JoinSpec, rightKeys [][]tabula.Value, pairs []rowPair) (tabula.Table, error) {
	leftSuffix := spec.LeftSuffix
	if leftSuffix == "" {
		leftSuffix = "_left"
	}
	rightSuffix := spec.RightSuffix
	if rightSuffix == "" {
		rightSuffix = "_right"
	}

	corrOf := make(map[string]int, len(spec.On))
	rightKeySet := make(map[string]bool, len(spec.On))
	for i, c := range spec.On {
		corrOf[c.Left] = i
		rightKeySet[c.Right] = true
	}
	leftNames := left.Schema().ColumnNames()
	leftNameSet := make(map[string]bool, len(leftNames))
	for _, n := range leftNames {
		leftNameSet[n] = true
	}
	rightKept := []string{}
	rightKeptSet := make(map[string]bool)
	for _, n := range right.Schema().ColumnNames() {
		if !rightKeySet[n] {
			rightKept = append(rightKept, n)
			rightKeptSet[n] = true
		}
	}

	outSchema := schema.CreateSchema()
	outCols := make([][]tabula.Value, 0, len(leftNames)+len(rightKept))

	for _, name := range leftNames {
		col, err := left.Schema().GetColumn(name)
		if err != nil {
			return nil, err
		}
		corrIdx, isKey := corrOf[name]
		outName := name
		if !isKey && rightKeptSet[name] {
			outName = name + leftSuffix
		}
		if outSchema, err = outSchema.CreateColumn(outName, col.Type()); err != nil {
			return nil, errors.InvalidSpecError{Err: err}
		}
		src, err := left.ColumnValues(name)
		if err != nil {
			return nil, err
		}
		cells := make([]tabula.Value, len(pairs))
		for p, pr := range pairs {
			switch {
			case pr.left >= 0:
				cells[p] = src[pr.left]
			case isKey:
				// right-only rows carry their own key values under the left naming
				cells[p] = rightKeys[corrIdx][pr.right]
			default:
				cells[p] = tabula.MissingValue(col.Type().Kind())
			}
		}
		outCols = append(outCols, cells)
	}

	for _, name := range rightKept {
		col, err := right.Schema().GetColumn(name)
		if err != nil {
			return nil, err
		}
		outName := name
		if leftNameSet[name] {
			outName = name + rightSuffix
		}
		if outSchema, err = outSchema.CreateColumn(outName, col.Type()); err != nil {
			return nil, errors.InvalidSpecError{Err: err}
		}
		src, err := right.ColumnValues(name)
		if err != nil {
			return nil, err
		}
		cells := make([]tabula.Value, len(pairs))
		for p, pr := range pairs {
			if pr.right >= 0 {
				cells[p] = src[pr.right]
			} else {
				cells[p] = tabula.MissingValue(col.Type().Kind())
			}
		}
		outCols = append(outCols, cells)
	}

	return table.FromColumns(outSchema, outCols)
}

// buildSideIndex indexes the build side's key rows by key. Rows with a
// missing key cell are omitted, since missing keys never match.
func buildSideIndex(keys [][]tabula.Value, nrows int) (*keyIndex, [][]int) {
	idx := createKeyIndex()
	slotRows := [][]int{}
	for row := 0; row < nrows; row++ {
		key := keyAt(keys, row)
		if keyHasMissing(key) {
			continue
		}
		slot := idx.find(key)
		if slot < 0 {
			slot = idx.add(key)
			slotRows = append(slotRows, nil)
		}
		slotRows[slot] = append(slotRows[slot], row)
	}
	return idx, slotRows
}

func keyHasMissing(key tabula.GroupKey) bool {
	for _, v := range key {
		if v.IsMissing() {
			return true
		}
	}
	return false
}

// validateJoin fails fast before any row pair is processed, gathering all
// correspondence problems
func validateJoin(left tabula.Table, right tabula.Table, spec tabula.JoinSpec) error {
	var multierr *multierror.Error
	if len(spec.On) == 0 {
		multierr = multierror.Append(multierr, fmt.Errorf("join requires at least one column correspondence"))
	}
	for _, c := range spec.On {
		lcol, lerr := left.Schema().GetColumn(c.Left)
		if lerr != nil {
			multierr = multierror.Append(multierr, lerr)
		}
		rcol, rerr := right.Schema().GetColumn(c.Right)
		if rerr != nil {
			multierr = multierror.Append(multierr, rerr)
		}
		if lerr == nil && rerr == nil && lcol.Type().Kind() != rcol.Type().Kind() {
			multierr = multierror.Append(multierr, errors.IncompatibleKindError{
				Name:     c.Left,
				Expected: lcol.Type().Kind().ToString(),
				Actual:   rcol.Type().Kind().ToString(),
			})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return errors.InvalidSpecError{Err: err}
	}
	return nil
}
