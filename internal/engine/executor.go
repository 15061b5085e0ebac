package engine

import (
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// dbtx is the subset of methods shared by *sql.DB and *sql.Tx, so the same
// executor serves calls inside and outside a transaction scope.
type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
}

var (
	_ dbtx = (*sql.DB)(nil)
	_ dbtx = (*sql.Tx)(nil)
)

// execute runs a DDL/DML statement and returns the affected-row count.
// Engine errors are wrapped in ExecError and carried verbatim; there is no
// retry and no caching, one round trip per call.
func execute(db dbtx, driver string, log zerolog.Logger, stmt types.Statement) (int64, error) {
	sqlText := rebind(driver, stmt.SQL)
	log.Debug().Str("sql", sqlText).Int("params", len(stmt.Args)).Msg("execute")

	res, err := db.Exec(sqlText, stmt.Args...)
	if err != nil {
		return 0, &types.ExecError{SQL: stmt.SQL, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &types.ExecError{SQL: stmt.SQL, Err: err}
	}
	return n, nil
}

// query runs a SELECT and materializes the result in the shape requested by
// opts: records keyed by transformed column names, or a Grid when AsTabular
// is set. The record path applies RowTransform per row and ResultTransform
// once over the materialized sequence.
func query(db dbtx, driver string, log zerolog.Logger, stmt types.Statement, opts types.Options) (*types.Result, error) {
	sqlText := rebind(driver, stmt.SQL)
	log.Debug().Str("sql", sqlText).Int("params", len(stmt.Args)).Msg("query")

	rows, err := db.Query(sqlText, stmt.Args...)
	if err != nil {
		return nil, &types.ExecError{SQL: stmt.SQL, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &types.ExecError{SQL: stmt.SQL, Err: err}
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = opts.Identifier(c)
	}

	if opts.AsTabular {
		grid := &types.Grid{Columns: names}
		for rows.Next() {
			vals, err := scanRow(rows, len(cols))
			if err != nil {
				return nil, &types.ExecError{SQL: stmt.SQL, Err: err}
			}
			grid.Rows = append(grid.Rows, vals)
		}
		if err := rows.Err(); err != nil {
			return nil, &types.ExecError{SQL: stmt.SQL, Err: err}
		}
		return &types.Result{Grid: grid}, nil
	}

	var records []types.Record
	for rows.Next() {
		vals, err := scanRow(rows, len(cols))
		if err != nil {
			return nil, &types.ExecError{SQL: stmt.SQL, Err: err}
		}
		rec := make(types.Record, len(cols))
		for i, name := range names {
			rec[name] = vals[i]
		}
		if opts.RowTransform != nil {
			rec = opts.RowTransform(rec)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.ExecError{SQL: stmt.SQL, Err: err}
	}
	if opts.ResultTransform != nil {
		records = opts.ResultTransform(records)
	}
	return &types.Result{Records: records}, nil
}

// scanRow scans the current row into a generic value slice. Byte slices
// become strings so records hold plain scalars.
func scanRow(rows *sql.Rows, n int) ([]any, error) {
	vals := make([]any, n)
	ptrs := make([]any, n)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	for i, v := range vals {
		if b, ok := v.([]byte); ok {
			vals[i] = string(b)
		}
	}
	return vals, nil
}
