package engine

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/skillet/internal/sqlbuild"
	"github.com/mesh-intelligence/skillet/pkg/types"
)

func TestScope_FreshNotRollbackOnly(t *testing.T) {
	c := openTestConn(t)
	s, err := c.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer s.Rollback()

	if s.IsRollbackOnly() {
		t.Error("fresh scope must not be rollback-only")
	}
	if s.ID() == "" {
		t.Error("scope must carry an id")
	}
}

func TestInScope_CommitOnSuccess(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)

	err := c.InScope(func(s *Scope) error {
		stmt, err := sqlbuild.Insert("fruit", nil, [][]any{{"Fig", "soft", 7, "basket", 5.0}})
		if err != nil {
			return err
		}
		_, err = s.Execute(stmt)
		return err
	})
	if err != nil {
		t.Fatalf("InScope failed: %v", err)
	}

	if n := countFruit(t, c); n != 5 {
		t.Errorf("expected 5 rows after commit, got %d", n)
	}
}

func TestScenarioB_FailureRollsBackAllWrites(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)
	before := countFruit(t, c)

	boom := errors.New("boom")
	err := c.InScope(func(s *Scope) error {
		stmt, _ := sqlbuild.Insert("fruit", nil, [][]any{
			{"Fig", "soft", 7, "basket", 5.0},
			{"Pear", "firm", 33, "bag", 7.0},
		})
		if _, err := s.Execute(stmt); err != nil {
			return err
		}
		return boom
	})
	if err != boom {
		t.Fatalf("original failure must propagate unchanged, got %v", err)
	}

	if n := countFruit(t, c); n != before {
		t.Errorf("expected count %d after rollback, got %d", before, n)
	}
}

func TestScenarioC_RollbackOnlyDiscardsOnNormalExit(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)
	before := countFruit(t, c)

	err := c.InScope(func(s *Scope) error {
		if err := s.SetRollbackOnly(); err != nil {
			return err
		}
		stmt, _ := sqlbuild.Insert("fruit", nil, [][]any{{"Fig", "soft", 7, "basket", 5.0}})
		_, err := s.Execute(stmt)
		return err
	})
	if err != nil {
		t.Fatalf("InScope failed: %v", err)
	}

	if n := countFruit(t, c); n != before {
		t.Errorf("row must be absent after rollback-only exit: count %d, want %d", n, before)
	}
}

func TestScope_UnsetRollbackOnlyCommits(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)

	err := c.InScope(func(s *Scope) error {
		s.SetRollbackOnly()
		if err := s.UnsetRollbackOnly(); err != nil {
			return err
		}
		stmt, _ := sqlbuild.Insert("fruit", nil, [][]any{{"Fig", "soft", 7, "basket", 5.0}})
		_, err := s.Execute(stmt)
		return err
	})
	if err != nil {
		t.Fatalf("InScope failed: %v", err)
	}

	if n := countFruit(t, c); n != 5 {
		t.Errorf("expected 5 rows after commit, got %d", n)
	}
}

func TestScope_ReadsSeeScopeWrites(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)

	err := c.InScope(func(s *Scope) error {
		stmt, _ := sqlbuild.Insert("fruit", nil, [][]any{{"Fig", "soft", 7, "basket", 5.0}})
		if _, err := s.Execute(stmt); err != nil {
			return err
		}
		// A query on the scope participates in the same transaction.
		if n := countFruit(t, s); n != 5 {
			t.Errorf("scope query must see uncommitted write: got %d", n)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InScope failed: %v", err)
	}
}

func TestScope_FinishedScopeRejectsEverything(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)

	s, err := c.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := s.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if _, err := s.Execute(types.Statement{SQL: "SELECT 1"}); err != types.ErrScopeFinished {
		t.Errorf("Execute: expected ErrScopeFinished, got %v", err)
	}
	if _, err := s.Query(types.Statement{SQL: "SELECT 1"}, types.Options{}); err != types.ErrScopeFinished {
		t.Errorf("Query: expected ErrScopeFinished, got %v", err)
	}
	if err := s.SetRollbackOnly(); err != types.ErrScopeFinished {
		t.Errorf("SetRollbackOnly: expected ErrScopeFinished, got %v", err)
	}
	if err := s.Commit(); err != types.ErrScopeFinished {
		t.Errorf("second Commit: expected ErrScopeFinished, got %v", err)
	}
	if err := s.Rollback(); err != types.ErrScopeFinished {
		t.Errorf("Rollback after Commit: expected ErrScopeFinished, got %v", err)
	}
}

func TestInScope_PanicRollsBackAndRepanics(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)
	before := countFruit(t, c)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic must propagate out of InScope")
			}
		}()
		c.InScope(func(s *Scope) error {
			stmt, _ := sqlbuild.Insert("fruit", nil, [][]any{{"Fig", "soft", 7, "basket", 5.0}})
			if _, err := s.Execute(stmt); err != nil {
				return err
			}
			panic("mid-scope failure")
		})
	}()

	if n := countFruit(t, c); n != before {
		t.Errorf("expected count %d after panic rollback, got %d", before, n)
	}
}

func TestInScope_ExecErrorPropagatesVerbatim(t *testing.T) {
	c := openTestConn(t)
	setupFruit(t, c)

	err := c.InScope(func(s *Scope) error {
		stmt, _ := sqlbuild.Insert("fruit", nil, [][]any{{"Plum", "ripe", 12, "carton", 8.4}})
		_, err := s.Execute(stmt)
		return err
	})
	var execErr *types.ExecError
	if !errors.As(err, &execErr) {
		t.Errorf("expected the ExecError, not a generic failure: %v", err)
	}
}
