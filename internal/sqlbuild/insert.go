package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// Insert builds one multi-row INSERT statement binding every value through a
// placeholder. All rows must have the same width; with a non-nil column list
// the width must match it.
//
// A nil column list emits "INSERT INTO t VALUES (...)": the caller must then
// supply values in table-declaration order. No validation of that alignment
// is possible here, so a misordered row silently lands in the wrong columns.
func Insert(table string, columns []string, rows [][]any) (types.Statement, error) {
	if table == "" {
		return types.Statement{}, types.ErrNoTable
	}
	if err := checkIdent(table); err != nil {
		return types.Statement{}, fmt.Errorf("table: %w", err)
	}
	if len(rows) == 0 {
		return types.Statement{}, types.ErrNoRows
	}

	width := len(rows[0])
	if width == 0 {
		return types.Statement{}, types.ErrNoColumns
	}
	for _, row := range rows {
		if len(row) != width {
			return types.Statement{}, types.ErrRaggedRows
		}
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)

	if columns != nil {
		if len(columns) != width {
			return types.Statement{}, types.ErrColumnCount
		}
		for _, c := range columns {
			if err := checkIdent(c); err != nil {
				return types.Statement{}, fmt.Errorf("column: %w", err)
			}
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(columns, ", "))
		b.WriteString(")")
	}

	rowFrag := "(" + placeholders(width) + ")"
	frags := make([]string, len(rows))
	args := make([]any, 0, len(rows)*width)
	for i, row := range rows {
		frags[i] = rowFrag
		args = append(args, row...)
	}

	b.WriteString(" VALUES ")
	b.WriteString(strings.Join(frags, ", "))

	return types.Statement{SQL: b.String(), Args: args}, nil
}

// InsertRecords builds an INSERT from map-shaped rows. Every record must
// cover exactly the keys of the first one; columns render in lexical order.
func InsertRecords(table string, records []types.Record) (types.Statement, error) {
	if len(records) == 0 {
		return types.Statement{}, types.ErrNoRows
	}
	if len(records[0]) == 0 {
		return types.Statement{}, types.ErrNoColumns
	}

	columns := sortedKeys(records[0])
	rows := make([][]any, len(records))
	for i, rec := range records {
		if len(rec) != len(columns) {
			return types.Statement{}, types.ErrRaggedRows
		}
		row := make([]any, len(columns))
		for j, col := range columns {
			v, ok := rec[col]
			if !ok {
				return types.Statement{}, types.ErrRaggedRows
			}
			row[j] = v
		}
		rows[i] = row
	}

	return Insert(table, columns, rows)
}
