package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// Update builds an UPDATE statement with a parameterized SET clause and,
// when pred is non-nil, a parameterized WHERE clause. A nil predicate
// updates every row in the table; that is the documented meaning of "no
// filter", not a mistake this function can catch.
func Update(table string, assignments types.Record, pred types.Predicate) (types.Statement, error) {
	if table == "" {
		return types.Statement{}, types.ErrNoTable
	}
	if err := checkIdent(table); err != nil {
		return types.Statement{}, fmt.Errorf("table: %w", err)
	}
	if len(assignments) == 0 {
		return types.Statement{}, types.ErrNoAssignments
	}

	sets := make([]string, 0, len(assignments))
	args := make([]any, 0, len(assignments))
	for _, col := range sortedKeys(assignments) {
		if err := checkIdent(col); err != nil {
			return types.Statement{}, fmt.Errorf("assignment column: %w", err)
		}
		sets = append(sets, col+" = ?")
		args = append(args, assignments[col])
	}

	where, whereArgs, err := whereClause(pred)
	if err != nil {
		return types.Statement{}, err
	}

	return types.Statement{
		SQL:  "UPDATE " + table + " SET " + strings.Join(sets, ", ") + where,
		Args: append(args, whereArgs...),
	}, nil
}
