// Package sqlbuild generates parameterized SQL statements from structured
// descriptions: table schemas, column/value maps, and equality predicates.
// All functions are pure; they validate their input locally and never send
// malformed text toward the engine. Values are always bound through
// placeholders, never interpolated into the SQL text.
//
// Map-shaped input (assignments, predicates) renders in lexical column order
// so that generated SQL is deterministic.
package sqlbuild

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// validIdent reports whether s is a bare SQL identifier: a letter or
// underscore followed by letters, digits, or underscores.
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// validQualifiedIdent accepts "name" or "qualifier.name".
func validQualifiedIdent(s string) bool {
	head, tail, found := strings.Cut(s, ".")
	if !found {
		return validIdent(s)
	}
	return validIdent(head) && validIdent(tail)
}

// checkIdent wraps ErrBadIdentifier with the offending name.
func checkIdent(s string) error {
	if !validIdent(s) {
		return fmt.Errorf("%q: %w", s, types.ErrBadIdentifier)
	}
	return nil
}

// placeholders returns n comma-separated "?" markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// sortedKeys returns the map keys in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// whereClause renders pred as a parameterized " WHERE ..." fragment with
// AND-combined equality tests, or "" when pred is empty. A nil value renders
// as "IS NULL" and binds no parameter.
func whereClause(pred types.Predicate) (string, []any, error) {
	if len(pred) == 0 {
		return "", nil, nil
	}
	var (
		terms []string
		args  []any
	)
	for _, col := range sortedKeys(pred) {
		if !validQualifiedIdent(col) {
			return "", nil, fmt.Errorf("predicate column %q: %w", col, types.ErrBadIdentifier)
		}
		if pred[col] == nil {
			terms = append(terms, col+" IS NULL")
			continue
		}
		terms = append(terms, col+" = ?")
		args = append(args, pred[col])
	}
	return " WHERE " + strings.Join(terms, " AND "), args, nil
}
