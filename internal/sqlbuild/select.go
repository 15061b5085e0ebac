package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// Join describes one inner join: the joined table, an optional alias, and
// column-to-column equality conditions keyed by the left-hand column. Values
// never appear in ON clauses, so conditions render inline without parameters.
type Join struct {
	Table string
	Alias string
	On    map[string]string
}

// Select builds a SELECT statement. A nil or empty column list selects "*";
// columns may be qualified by a table name or join alias. Joins apply in the
// given order. The predicate becomes a parameterized WHERE clause; nil means
// no filter. orderBy entries are column names with an optional "ASC" or
// "DESC" suffix.
func Select(table string, columns []string, pred types.Predicate, joins []Join, orderBy []string) (types.Statement, error) {
	if table == "" {
		return types.Statement{}, types.ErrNoTable
	}
	if err := checkIdent(table); err != nil {
		return types.Statement{}, fmt.Errorf("table: %w", err)
	}

	cols := "*"
	if len(columns) > 0 {
		for _, c := range columns {
			if c == "*" {
				continue
			}
			if !validQualifiedIdent(c) {
				return types.Statement{}, fmt.Errorf("column %q: %w", c, types.ErrBadIdentifier)
			}
		}
		cols = strings.Join(columns, ", ")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(cols)
	b.WriteString(" FROM ")
	b.WriteString(table)

	for _, j := range joins {
		frag, err := joinClause(j)
		if err != nil {
			return types.Statement{}, err
		}
		b.WriteString(frag)
	}

	where, args, err := whereClause(pred)
	if err != nil {
		return types.Statement{}, err
	}
	b.WriteString(where)

	if len(orderBy) > 0 {
		terms := make([]string, 0, len(orderBy))
		for _, o := range orderBy {
			term, err := orderTerm(o)
			if err != nil {
				return types.Statement{}, err
			}
			terms = append(terms, term)
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(terms, ", "))
	}

	return types.Statement{SQL: b.String(), Args: args}, nil
}

func joinClause(j Join) (string, error) {
	if j.Table == "" {
		return "", types.ErrNoTable
	}
	if err := checkIdent(j.Table); err != nil {
		return "", fmt.Errorf("join table: %w", err)
	}
	if j.Alias != "" {
		if err := checkIdent(j.Alias); err != nil {
			return "", fmt.Errorf("join alias: %w", err)
		}
	}
	if len(j.On) == 0 {
		return "", fmt.Errorf("join %s: %w", j.Table, types.ErrNoAssignments)
	}

	var terms []string
	for _, left := range sortedKeys(j.On) {
		right := j.On[left]
		if !validQualifiedIdent(left) {
			return "", fmt.Errorf("join condition %q: %w", left, types.ErrBadIdentifier)
		}
		if !validQualifiedIdent(right) {
			return "", fmt.Errorf("join condition %q: %w", right, types.ErrBadIdentifier)
		}
		terms = append(terms, left+" = "+right)
	}

	frag := " JOIN " + j.Table
	if j.Alias != "" {
		frag += " " + j.Alias
	}
	return frag + " ON " + strings.Join(terms, " AND "), nil
}

func orderTerm(o string) (string, error) {
	col, dir, found := strings.Cut(o, " ")
	if !validQualifiedIdent(col) {
		return "", fmt.Errorf("order by %q: %w", o, types.ErrBadIdentifier)
	}
	if !found {
		return col, nil
	}
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case "ASC":
		return col + " ASC", nil
	case "DESC":
		return col + " DESC", nil
	default:
		return "", fmt.Errorf("order by %q: %w", o, types.ErrBadIdentifier)
	}
}
