// Package tabula contains the core components of Tabula, a library for
// in-memory columnar data manipulation. This root package defines the types
// which are employed during regular use of the library - column kinds,
// values, schemas, tables and operation specs - while subpackages provide
// implementations, relational operations and data sources.
package tabula
