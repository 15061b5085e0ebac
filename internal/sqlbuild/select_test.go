package sqlbuild

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

func TestSelect_Star(t *testing.T) {
	stmt, err := Select("fruit", nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if stmt.SQL != "SELECT * FROM fruit" {
		t.Errorf("got %q", stmt.SQL)
	}
	if len(stmt.Args) != 0 {
		t.Errorf("unexpected args: %v", stmt.Args)
	}
}

func TestSelect_Predicate(t *testing.T) {
	stmt, err := Select("fruit", nil, types.Predicate{"appearance": "ripe"}, nil, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if stmt.SQL != "SELECT * FROM fruit WHERE appearance = ?" {
		t.Errorf("got %q", stmt.SQL)
	}
	if !reflect.DeepEqual(stmt.Args, []any{"ripe"}) {
		t.Errorf("got args %v", stmt.Args)
	}
}

func TestSelect_PredicateLexicalOrder(t *testing.T) {
	stmt, err := Select("t", nil, types.Predicate{"b": 2, "a": 1}, nil, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if stmt.SQL != "SELECT * FROM t WHERE a = ? AND b = ?" {
		t.Errorf("predicate columns not in lexical order: %q", stmt.SQL)
	}
	if !reflect.DeepEqual(stmt.Args, []any{1, 2}) {
		t.Errorf("args do not follow column order: %v", stmt.Args)
	}
}

func TestSelect_NilPredicateValue(t *testing.T) {
	stmt, err := Select("t", nil, types.Predicate{"grade": nil}, nil, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if stmt.SQL != "SELECT * FROM t WHERE grade IS NULL" {
		t.Errorf("got %q", stmt.SQL)
	}
	if len(stmt.Args) != 0 {
		t.Errorf("IS NULL must bind no parameter, got %v", stmt.Args)
	}
}

func TestSelect_ColumnsAndOrderBy(t *testing.T) {
	stmt, err := Select("fruit", []string{"name", "cost"}, nil, nil, []string{"cost DESC", "name"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	want := "SELECT name, cost FROM fruit ORDER BY cost DESC, name"
	if stmt.SQL != want {
		t.Errorf("got %q, want %q", stmt.SQL, want)
	}
}

func TestSelect_Joins(t *testing.T) {
	stmt, err := Select("fruit",
		[]string{"fruit.name", "o.quantity"},
		types.Predicate{"o.status": "open"},
		[]Join{{Table: "orders", Alias: "o", On: map[string]string{"fruit.name": "o.fruit_name"}}},
		nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	want := "SELECT fruit.name, o.quantity FROM fruit" +
		" JOIN orders o ON fruit.name = o.fruit_name" +
		" WHERE o.status = ?"
	if stmt.SQL != want {
		t.Errorf("got %q, want %q", stmt.SQL, want)
	}
	if !reflect.DeepEqual(stmt.Args, []any{"open"}) {
		t.Errorf("got args %v", stmt.Args)
	}
}

func TestSelect_Validation(t *testing.T) {
	if _, err := Select("", nil, nil, nil, nil); err != types.ErrNoTable {
		t.Errorf("expected ErrNoTable, got %v", err)
	}

	_, err := Select("t", []string{"a; drop"}, nil, nil, nil)
	if !errors.Is(err, types.ErrBadIdentifier) {
		t.Errorf("bad column: expected ErrBadIdentifier, got %v", err)
	}

	_, err = Select("t", nil, types.Predicate{"a=1 OR 1": 1}, nil, nil)
	if !errors.Is(err, types.ErrBadIdentifier) {
		t.Errorf("bad predicate column: expected ErrBadIdentifier, got %v", err)
	}

	_, err = Select("t", nil, nil, nil, []string{"cost SIDEWAYS"})
	if !errors.Is(err, types.ErrBadIdentifier) {
		t.Errorf("bad order direction: expected ErrBadIdentifier, got %v", err)
	}

	_, err = Select("t", nil, nil, []Join{{Table: "u"}}, nil)
	if !errors.Is(err, types.ErrNoAssignments) {
		t.Errorf("join without conditions: expected ErrNoAssignments, got %v", err)
	}
}
