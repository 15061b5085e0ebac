// Package skillet provides the public API for the skillet SQL access layer:
// opening connections, building parameterized statements, executing them,
// and scoping work in transactions. Implementation details stay internal.
package skillet

import (
	"github.com/mesh-intelligence/skillet/internal/engine"
	"github.com/mesh-intelligence/skillet/internal/sqlbuild"
	"github.com/mesh-intelligence/skillet/pkg/types"
)

// Version is the library version reported by the CLI.
const Version = "0.1.0"

type (
	// Conn is a live database connection. See engine.Conn.
	Conn = engine.Conn
	// Scope is a transaction scope. See engine.Scope.
	Scope = engine.Scope
	// Join describes one inner join for Select.
	Join = sqlbuild.Join
)

// Open opens a connection for the given descriptor.
//
// Example:
//
//	conn, err := skillet.Open(types.Descriptor{
//	    Driver:   types.DriverSQLite,
//	    Database: "app.db",
//	})
//	if err != nil {
//	    return err
//	}
//	defer conn.Close()
func Open(desc types.Descriptor) (*Conn, error) {
	return engine.Open(desc)
}

// CreateTable builds a CREATE TABLE statement from ordered column specs.
func CreateTable(table string, cols []types.Column) (types.Statement, error) {
	return sqlbuild.CreateTable(table, cols)
}

// DropTable builds a DROP TABLE statement.
func DropTable(table string) (types.Statement, error) {
	return sqlbuild.DropTable(table)
}

// Select builds a SELECT statement with an optional predicate, joins, and
// ORDER BY list.
func Select(table string, columns []string, pred types.Predicate, joins []Join, orderBy []string) (types.Statement, error) {
	return sqlbuild.Select(table, columns, pred, joins, orderBy)
}

// Insert builds a multi-row INSERT. With a nil column list, values bind in
// table-declaration order; alignment is the caller's responsibility.
func Insert(table string, columns []string, rows [][]any) (types.Statement, error) {
	return sqlbuild.Insert(table, columns, rows)
}

// InsertRecords builds an INSERT from map-shaped rows.
func InsertRecords(table string, records []types.Record) (types.Statement, error) {
	return sqlbuild.InsertRecords(table, records)
}

// Update builds an UPDATE with a parameterized SET clause. A nil predicate
// updates every row.
func Update(table string, assignments types.Record, pred types.Predicate) (types.Statement, error) {
	return sqlbuild.Update(table, assignments, pred)
}
