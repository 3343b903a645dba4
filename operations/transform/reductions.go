package transform

import (
	"sort"

	"github.com/go-tabula/tabula"
)

// reductionDef describes which sources a reduction accepts. A nil kinds
// predicate accepts any column kind.
type reductionDef struct {
	kinds       func(tabula.Kind) bool
	predicateOK bool
}

func numericOrBool(k tabula.Kind) bool {
	return k == tabula.KindNumeric || k == tabula.KindBool
}

var reductions = map[string]reductionDef{
	tabula.Sum:           {kinds: numericOrBool, predicateOK: true},
	tabula.Mean:          {kinds: numericOrBool, predicateOK: true},
	tabula.Median:        {kinds: numericOrBool},
	tabula.Min:           {},
	tabula.Max:           {},
	tabula.First:         {},
	tabula.Count:         {},
	tabula.CountDistinct: {},
}

// asFloat coerces a non-missing numeric or boolean Value to float64, with
// true counting as 1 and false as 0
func asFloat(v tabula.Value) float64 {
	if v.Kind() == tabula.KindBool {
		if v.Bool() {
			return 1
		}
		return 0
	}
	return v.Float64()
}

// applyReduction reduces a column slice to a single Value under the
// documented missing-value policy: without exclusion, any missing entry
// makes the result missing; with exclusion, missing entries are dropped
// first, and an emptied slice yields the missing marker rather than an
// error. srcKind is the element kind of the slice, used to type the missing
// marker for kind-preserving reductions.
func applyReduction(name string, cells []tabula.Value, exclude bool, srcKind tabula.Kind) tabula.Value {
	switch name {
	case tabula.Sum, tabula.Mean, tabula.Median:
		vals := make([]float64, 0, len(cells))
		for _, c := range cells {
			if c.IsMissing() {
				if !exclude {
					return tabula.MissingValue(tabula.KindNumeric)
				}
				continue
			}
			vals = append(vals, asFloat(c))
		}
		if len(vals) == 0 {
			return tabula.MissingValue(tabula.KindNumeric)
		}
		switch name {
		case tabula.Sum:
			total := 0.0
			for _, v := range vals {
				total += v
			}
			return tabula.NumericValue(total)
		case tabula.Mean:
			total := 0.0
			for _, v := range vals {
				total += v
			}
			return tabula.NumericValue(total / float64(len(vals)))
		default:
			sort.Float64s(vals)
			mid := len(vals) / 2
			if len(vals)%2 == 1 {
				return tabula.NumericValue(vals[mid])
			}
			return tabula.NumericValue((vals[mid-1] + vals[mid]) / 2)
		}
	case tabula.Min, tabula.Max:
		var best tabula.Value
		seen := false
		for _, c := range cells {
			if c.IsMissing() {
				if !exclude {
					return tabula.MissingValue(srcKind)
				}
				continue
			}
			if !seen || (name == tabula.Min && c.Less(best)) || (name == tabula.Max && best.Less(c)) {
				best = c
				seen = true
			}
		}
		if !seen {
			return tabula.MissingValue(srcKind)
		}
		return best
	case tabula.First:
		if !exclude {
			if len(cells) == 0 {
				return tabula.MissingValue(srcKind)
			}
			return cells[0]
		}
		for _, c := range cells {
			if !c.IsMissing() {
				return c
			}
		}
		return tabula.MissingValue(srcKind)
	default:
		// unreachable after aggregation validation
		return tabula.MissingValue(srcKind)
	}
}
