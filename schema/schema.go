package schema

import (
	"reflect"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
)

// column is a named, typed position within a schema.
type column struct {
	name    string
	idx     int
	colType tabula.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() tabula.Column {
	return &column{c.name, c.idx, c.colType}
}

// Name returns the name of this Column
func (c *column) Name() string {
	return c.name
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the index of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Type returns the ColumnType of this Column
func (c *column) Type() tabula.ColumnType {
	return c.colType
}

// Schema is an ordered mapping from unique column names to column types.
type schema struct {
	schema map[string]tabula.Column
	order  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() tabula.Schema {
	return &schema{
		schema: make(map[string]tabula.Column),
		order:  []string{},
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema tabula.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return errors.IncompatibleSchemaError{Reason: "Schemas have unequal numbers of columns"}
	}
	return s.ForEachColumn(func(name string, col tabula.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return errors.IncompatibleSchemaError{Reason: "Column " + name + " indices do not match"}
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return errors.IncompatibleSchemaError{Reason: "Column " + name + " types do not match"}
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() tabula.Schema {
	newSchema := make(map[string]tabula.Column)
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	newOrder := make([]string, len(s.order))
	copy(newOrder, s.order)
	return &schema{schema: newSchema, order: newOrder}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.order)
}

// GetColumn returns the column with the given name, if it exists
func (s *schema) GetColumn(colName string) (col tabula.Column, err error) {
	col, ok := s.schema[colName]
	if !ok {
		err = errors.UnknownColumnError{Name: colName}
	}
	return
}

// HasColumn returns true iff this Schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetColumn(colName)
	return err == nil
}

// CreateColumn defines a new column within this Schema
func (s *schema) CreateColumn(colName string, colType tabula.ColumnType) (newSchema tabula.Schema, err error) {
	if _, exists := s.schema[colName]; exists {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	s.schema[colName] = &column{colName, len(s.order), colType}
	s.order = append(s.order, colName)
	return s, nil
}

// RenameColumn renames a column within this Schema
func (s *schema) RenameColumn(oldName string, newName string) (newSchema tabula.Schema, err error) {
	col, err := s.GetColumn(oldName)
	if err != nil {
		return nil, err
	}
	if oldName == newName {
		return s, nil
	}
	if _, exists := s.schema[newName]; exists {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	s.schema[newName] = &column{newName, col.Index(), col.Type()}
	delete(s.schema, oldName)
	s.order[col.Index()] = newName
	return s, nil
}

// RemoveColumn removes a column from this Schema, reindexing the remainder
func (s *schema) RemoveColumn(colName string) (newSchema tabula.Schema, err error) {
	col, err := s.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	delete(s.schema, colName)
	s.order = append(s.order[:col.Index()], s.order[col.Index()+1:]...)
	for i, name := range s.order {
		s.schema[name].SetIndex(i)
	}
	return s, nil
}

// ColumnNames returns the names in this Schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// ColumnTypes returns the types in this Schema, in index order
func (s *schema) ColumnTypes() []tabula.ColumnType {
	types := make([]tabula.ColumnType, len(s.order))
	for i, name := range s.order {
		types[i] = s.schema[name].Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col tabula.Column) error) error {
	for _, name := range s.order {
		if err := fn(name, s.schema[name]); err != nil {
			return err
		}
	}
	return nil
}
