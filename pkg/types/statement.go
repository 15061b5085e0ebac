package types

import "errors"

// Column describes one column of a table for DDL generation: a name, an SQL
// type, and optional inline constraints ("PRIMARY KEY", "NOT NULL", ...).
// Table-level constraints such as composite keys are not supported.
type Column struct {
	Name        string
	Type        string
	Constraints string
}

// Statement pairs SQL text with its ordered positional parameters. It is the
// canonical output of the statement builder and the canonical input to the
// executor. Parameter values are limited to what the driver can bind:
// numbers, strings, booleans, and nil.
type Statement struct {
	SQL  string
	Args []any
}

// Statement builder validation errors. The builder fails fast on malformed
// structural input; malformed text never reaches the engine.
var (
	ErrNoTable       = errors.New("table name must not be empty")
	ErrNoColumns     = errors.New("column list must not be empty")
	ErrNoRows        = errors.New("row list must not be empty")
	ErrRaggedRows    = errors.New("rows must all have the same width")
	ErrColumnCount   = errors.New("row width does not match column list")
	ErrNoAssignments = errors.New("assignment map must not be empty")
	ErrNoColumnType  = errors.New("column type must not be empty")
	ErrBadIdentifier = errors.New("invalid SQL identifier")
)
