package tabula

// Reduction names accepted by an Aggregation. Referencing any other name
// fails the whole aggregation before any group is processed.
const (
	// Sum reduces a numeric or boolean slice to its total (true counts as 1)
	Sum = "sum"
	// Mean reduces a numeric or boolean slice to its average (the proportion
	// true, for booleans)
	Mean = "mean"
	// Min reduces a numeric or text slice to its smallest value
	Min = "min"
	// Max reduces a numeric or text slice to its largest value
	Max = "max"
	// Median reduces a numeric slice to its middle value
	Median = "median"
	// Count reports the raw number of rows in a group, regardless of missing
	// values in any column
	Count = "count"
	// CountDistinct reports the number of distinct combinations of a column
	// subset within a group
	CountDistinct = "count_distinct"
	// First reduces any slice to its first element
	First = "first"
)

// Aggregation maps one output column to a reduction over a source within
// each group.
//
// Exactly one source is named per Aggregation: Column for single-column
// reductions, Columns for CountDistinct (defaulting to all columns when
// empty), Predicate for boolean-condition reductions (the predicate is
// evaluated per row, producing true/false/missing, and the result slice is
// reduced exactly as a boolean column would be). Count takes no source.
//
// When ExcludeMissing is set, missing entries are dropped from the slice
// before reducing; if that empties the slice, the result is the missing
// marker. When unset, a reduction which encounters a missing value produces
// the missing marker. Count ignores ExcludeMissing.
type Aggregation struct {
	Output         string
	Reduction      string
	Column         string
	Columns        []string
	Predicate      PredicateOperation
	ExcludeMissing bool
}
