// Package transform provides the relational operations of Tabula: filtering,
// derived columns, deduplication, grouping, aggregation and joins. Every
// operation treats its input Table(s) as immutable snapshots and produces a
// new Table.
package transform
