package tabula

// Column describes a named, typed position within a Schema.
type Column interface {
	Clone() Column         // Clone returns a copy of this Column
	Name() string          // Name returns the name of this Column
	Index() int            // Index returns the index of this Column within a Schema
	SetIndex(newIndex int) // Modifies the Index of this Column within a Schema
	Type() ColumnType      // Type returns the ColumnType of this Column
}

// Schema is an ordered mapping from unique column names to column types.
// It allows one to obtain columns by name, define new columns, remove
// columns, etc. Tables never share a mutable Schema - operations which
// alter a Schema Clone it first.
type Schema interface {
	Clone() Schema                                          // Clone returns a copy of this Schema
	Equals(otherSchema Schema) error                        // Equals returns nil iff this and another Schema are equivalent
	NumColumns() int                                        // NumColumns returns the number of columns in this Schema
	ColumnNames() []string                                  // ColumnNames returns the names in this Schema, in index order
	ColumnTypes() []ColumnType                              // ColumnTypes returns the types in this Schema, in index order
	GetColumn(colName string) (Column, error)               // GetColumn returns the column with the given name, if it exists
	HasColumn(colName string) bool                          // HasColumn returns true iff this Schema contains a column with the given name
	CreateColumn(colName string, colType ColumnType) (Schema, error) // CreateColumn defines a new column within this Schema
	RenameColumn(oldName string, newName string) (Schema, error)     // RenameColumn renames a column within this Schema
	RemoveColumn(colName string) (Schema, error)                     // RemoveColumn removes a column from this Schema
	ForEachColumn(fn func(name string, col Column) error) error      // ForEachColumn iterates over the columns in this Schema, in index order
}
