package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// CreateTable builds a CREATE TABLE statement with the columns in the given
// order. Constraints are inline per column; table-level constraints such as
// composite keys are not supported.
func CreateTable(table string, cols []types.Column) (types.Statement, error) {
	if table == "" {
		return types.Statement{}, types.ErrNoTable
	}
	if err := checkIdent(table); err != nil {
		return types.Statement{}, fmt.Errorf("table: %w", err)
	}
	if len(cols) == 0 {
		return types.Statement{}, types.ErrNoColumns
	}

	defs := make([]string, 0, len(cols))
	for _, col := range cols {
		if err := checkIdent(col.Name); err != nil {
			return types.Statement{}, fmt.Errorf("column: %w", err)
		}
		if strings.TrimSpace(col.Type) == "" {
			return types.Statement{}, fmt.Errorf("column %q: %w", col.Name, types.ErrNoColumnType)
		}
		def := col.Name + " " + col.Type
		if col.Constraints != "" {
			def += " " + col.Constraints
		}
		defs = append(defs, def)
	}

	return types.Statement{
		SQL: "CREATE TABLE " + table + " (" + strings.Join(defs, ", ") + ")",
	}, nil
}

// DropTable builds a DROP TABLE statement. There is no existence check;
// dropping an absent table fails at execution time with whatever the engine
// reports.
func DropTable(table string) (types.Statement, error) {
	if table == "" {
		return types.Statement{}, types.ErrNoTable
	}
	if err := checkIdent(table); err != nil {
		return types.Statement{}, fmt.Errorf("table: %w", err)
	}
	return types.Statement{SQL: "DROP TABLE " + table}, nil
}
