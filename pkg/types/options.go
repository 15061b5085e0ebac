package types

import "strings"

// Options shapes the result of a query. The zero value is usable: records
// come back as-is with lower-cased column keys.
type Options struct {
	// RowTransform is applied to each record before it joins the result.
	// Nil means identity. It enables derived columns without touching
	// the statement.
	RowTransform func(Record) Record

	// ResultTransform is applied to the complete record sequence before
	// Query returns. Nil means return the materialized sequence as-is.
	ResultTransform func([]Record) []Record

	// AsTabular selects the Grid result shape: a header of column names
	// followed by value rows, instead of one Record per row.
	AsTabular bool

	// IdentifierTransform maps each column name before it becomes a
	// Record key or Grid header entry. Nil means strings.ToLower.
	IdentifierTransform func(string) string
}

// Identifier returns the effective identifier transform.
func (o Options) Identifier(name string) string {
	if o.IdentifierTransform != nil {
		return o.IdentifierTransform(name)
	}
	return strings.ToLower(name)
}

// Grid is the tabular result shape: a header row of column names and the
// value rows in query order.
type Grid struct {
	Columns []string
	Rows    [][]any
}

// Result holds the outcome of a query in one of two shapes. Records is
// populated unless Options.AsTabular was set, in which case Grid is.
type Result struct {
	Records []Record
	Grid    *Grid
}
