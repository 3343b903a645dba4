package tabula

// Row is a read-only view of a single row of columnar data, along with a
// reference to the Schema for that row. In practice, users of Row call its
// getter methods within filter predicates and derived-column operations.
type Row interface {
	Schema() Schema                                 // Schema returns the schema for this row
	IsMissing(colName string) bool                  // IsMissing returns true iff the given column value is missing in this row. If the column does not exist, this function returns false.
	Get(colName string) (Value, error)              // Get returns the value of any column, if it exists
	GetFloat64(colName string) (col float64, err error) // GetFloat64 retrieves a numeric value from the column with the given name, failing if it is missing
	GetText(colName string) (col string, err error)     // GetText retrieves a text or categorical value from the column with the given name, failing if it is missing
	GetBool(colName string) (col bool, err error)       // GetBool retrieves a boolean value from the column with the given name, failing if it is missing
	ToString() string                               // ToString returns a string representation of this row
}

// Table is an immutable columnar snapshot: an ordered set of named,
// single-typed columns sharing one row count. Every operation over a Table
// produces a new Table rather than mutating in place, so a Table handed to
// one operation remains valid for others, including concurrent readers.
type Table interface {
	ID() string                                       // ID returns the unique identifier of this snapshot
	Schema() Schema                                   // Schema returns the Schema of this Table
	NumRows() int                                     // NumRows returns the number of rows in this Table
	Cell(colName string, row int) (Value, error)      // Cell returns the value at the given column and row position
	Row(row int) Row                                  // Row returns a read-only view of the given row
	ForEachRow(fn func(row int, r Row) error) error   // ForEachRow iterates over the rows of this Table in order
	ColumnValues(colName string) ([]Value, error)     // ColumnValues returns a copy of the cells of the given column, in row order
	Gather(indices []int) (Table, error)              // Gather returns a new Table containing the given rows, in the given order
}

// Operation is a transformation applied to a Table within a pipeline,
// producing a new Table.
type Operation func(t Table) (Table, error)

// FilterOperation is a generic function for determining whether or not a
// Row should be retained
type FilterOperation func(row Row) (bool, error)

// MapOperation is a generic function for deriving a new column value from a
// Row
type MapOperation func(row Row) (Value, error)

// PredicateOperation is a generic function for evaluating a logical
// condition against a Row, producing a true, false or missing boolean Value
type PredicateOperation func(row Row) (Value, error)

// Apply chains Operations onto a Table in order, returning the final Table.
// The source Table is never mutated.
func Apply(t Table, ops ...Operation) (Table, error) {
	var err error
	for _, op := range ops {
		t, err = op(t)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}
