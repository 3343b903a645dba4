package transform

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
	"github.com/go-tabula/tabula/schema"
	"github.com/go-tabula/tabula/table"
)

// Aggregate reduces each group of a Grouping to one output row. The output
// Table carries the grouping columns' key values first, in group order,
// followed by one column per Aggregation. The whole aggregation fails
// before any group is processed if any Aggregation references an undeclared
// column, an unknown reduction, an unsupported column kind, or a duplicate
// output name.
func Aggregate(g *Grouping, aggs ...tabula.Aggregation) (tabula.Table, error) {
	t := g.table
	srcSchema := t.Schema()
	if err := validateAggregations(srcSchema, g.cols, aggs); err != nil {
		return nil, err
	}

	nGroups := len(g.groups)
	outSchema := schema.CreateSchema()
	outCols := make([][]tabula.Value, 0, len(g.cols)+len(aggs))

	for i, colName := range g.cols {
		col, err := srcSchema.GetColumn(colName)
		if err != nil {
			return nil, err
		}
		if outSchema, err = outSchema.CreateColumn(colName, col.Type()); err != nil {
			return nil, err
		}
		cells := make([]tabula.Value, nGroups)
		for gi, grp := range g.groups {
			cells[gi] = grp.Key[i]
		}
		outCols = append(outCols, cells)
	}

	for _, agg := range aggs {
		outType, srcKind, err := aggregationOutputType(srcSchema, agg)
		if err != nil {
			return nil, err
		}
		cells, err := aggregationCells(t, g.groups, agg, srcKind)
		if err != nil {
			return nil, err
		}
		if outSchema, err = outSchema.CreateColumn(agg.Output, outType); err != nil {
			return nil, err
		}
		outCols = append(outCols, cells)
	}

	return table.FromColumns(outSchema, outCols)
}

// Summarize groups a Table by the given columns and aggregates each group,
// as a single pipeline stage
func Summarize(by []string, aggs ...tabula.Aggregation) tabula.Operation {
	return func(t tabula.Table) (tabula.Table, error) {
		g, err := Partition(t, by...)
		if err != nil {
			return nil, err
		}
		return Aggregate(g, aggs...)
	}
}

// aggregationOutputType resolves the output column type of one Aggregation,
// and the element kind of its source slice
func aggregationOutputType(srcSchema tabula.Schema, agg tabula.Aggregation) (tabula.ColumnType, tabula.Kind, error) {
	switch {
	case agg.Reduction == tabula.Count || agg.Reduction == tabula.CountDistinct:
		return &tabula.NumericColumnType{}, tabula.KindNumeric, nil
	case agg.Predicate != nil:
		return &tabula.NumericColumnType{}, tabula.KindBool, nil
	case agg.Reduction == tabula.Sum || agg.Reduction == tabula.Mean || agg.Reduction == tabula.Median:
		col, err := srcSchema.GetColumn(agg.Column)
		if err != nil {
			return nil, 0, err
		}
		return &tabula.NumericColumnType{}, col.Type().Kind(), nil
	default:
		// kind-preserving reductions: min, max, first
		col, err := srcSchema.GetColumn(agg.Column)
		if err != nil {
			return nil, 0, err
		}
		return col.Type(), col.Type().Kind(), nil
	}
}

// aggregationCells computes one output cell per group for one Aggregation
func aggregationCells(t tabula.Table, groups []Group, agg tabula.Aggregation, srcKind tabula.Kind) ([]tabula.Value, error) {
	cells := make([]tabula.Value, len(groups))
	switch {
	case agg.Reduction == tabula.Count:
		// group size, unaffected by missing values in any column
		for gi, grp := range groups {
			cells[gi] = tabula.NumericValue(float64(len(grp.Indices)))
		}
	case agg.Reduction == tabula.CountDistinct:
		byCols := agg.Columns
		if len(byCols) == 0 {
			byCols = t.Schema().ColumnNames()
		}
		colCells, err := keyColumns(t, byCols)
		if err != nil {
			return nil, err
		}
		for gi, grp := range groups {
			idx := createKeyIndex()
			for _, row := range grp.Indices {
				key := keyAt(colCells, row)
				if idx.find(key) < 0 {
					idx.add(key)
				}
			}
			cells[gi] = tabula.NumericValue(float64(idx.size()))
		}
	case agg.Predicate != nil:
		for gi, grp := range groups {
			slice := make([]tabula.Value, len(grp.Indices))
			for i, row := range grp.Indices {
				v, err := agg.Predicate(t.Row(row))
				if err != nil {
					return nil, err
				}
				if v.Kind() != tabula.KindBool {
					return nil, errors.IncompatibleKindError{
						Name:     agg.Output,
						Expected: tabula.KindBool.ToString(),
						Actual:   v.Kind().ToString(),
					}
				}
				slice[i] = v
			}
			cells[gi] = applyReduction(agg.Reduction, slice, agg.ExcludeMissing, srcKind)
		}
	default:
		srcCells, err := t.ColumnValues(agg.Column)
		if err != nil {
			return nil, err
		}
		for gi, grp := range groups {
			slice := make([]tabula.Value, len(grp.Indices))
			for i, row := range grp.Indices {
				slice[i] = srcCells[row]
			}
			cells[gi] = applyReduction(agg.Reduction, slice, agg.ExcludeMissing, srcKind)
		}
	}
	return cells, nil
}

// validateAggregations fails fast on every malformed Aggregation, gathering
// all problems rather than stopping at the first
func validateAggregations(srcSchema tabula.Schema, by []string, aggs []tabula.Aggregation) error {
	var multierr *multierror.Error
	outputs := make(map[string]bool, len(by)+len(aggs))
	for _, colName := range by {
		outputs[colName] = true
	}
	for _, agg := range aggs {
		if agg.Output == "" {
			multierr = multierror.Append(multierr, fmt.Errorf("aggregation output name must not be empty"))
		} else if outputs[agg.Output] {
			multierr = multierror.Append(multierr, errors.DuplicateColumnError{Name: agg.Output})
		} else {
			outputs[agg.Output] = true
		}
		rd, ok := reductions[agg.Reduction]
		if !ok {
			multierr = multierror.Append(multierr, errors.UnknownReductionError{Name: agg.Reduction})
			continue
		}
		if err := validateAggregationSource(srcSchema, agg, rd); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return errors.InvalidSpecError{Err: err}
	}
	return nil
}

func validateAggregationSource(srcSchema tabula.Schema, agg tabula.Aggregation, rd reductionDef) error {
	switch agg.Reduction {
	case tabula.Count:
		if agg.Column != "" || len(agg.Columns) > 0 || agg.Predicate != nil {
			return fmt.Errorf("reduction %s takes no source", agg.Reduction)
		}
	case tabula.CountDistinct:
		if agg.Column != "" || agg.Predicate != nil {
			return fmt.Errorf("reduction %s dedupes by a column subset; use Columns", agg.Reduction)
		}
		for _, colName := range agg.Columns {
			if !srcSchema.HasColumn(colName) {
				return errors.UnknownColumnError{Name: colName}
			}
		}
	default:
		if agg.Predicate != nil {
			if !rd.predicateOK {
				return fmt.Errorf("reduction %s does not accept a predicate", agg.Reduction)
			}
			if agg.Column != "" {
				return fmt.Errorf("aggregation %s names both a column and a predicate", agg.Output)
			}
			return nil
		}
		if agg.Column == "" {
			return fmt.Errorf("reduction %s requires a source column", agg.Reduction)
		}
		col, err := srcSchema.GetColumn(agg.Column)
		if err != nil {
			return err
		}
		if rd.kinds != nil && !rd.kinds(col.Type().Kind()) {
			return errors.IncompatibleKindError{
				Name:     agg.Column,
				Expected: "numeric or boolean",
				Actual:   col.Type().Kind().ToString(),
			}
		}
	}
	return nil
}
