package engine

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

type scopeState int

const (
	scopeActive scopeState = iota
	scopeCommitted
	scopeRolledBack
)

// Scope is a transaction scope over a single connection. Every Execute and
// Query issued on the scope participates in the same underlying transaction.
// A scope is single-use: after Commit or Rollback every operation returns
// ErrScopeFinished. A scope must not be used from more than one goroutine;
// that is a caller obligation, not guarded here.
type Scope struct {
	id           string
	conn         *Conn
	tx           *sql.Tx
	state        scopeState
	rollbackOnly bool
	log          zerolog.Logger
}

// newUUID generates a UUID v7 string for scope identification.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Begin starts a transaction scope on the connection. The scope starts
// active with the rollback-only flag unset.
func (c *Conn) Begin() (*Scope, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, &types.ExecError{SQL: "BEGIN", Err: err}
	}
	s := &Scope{
		id:   newUUID(),
		conn: c,
		tx:   tx,
	}
	s.log = c.log.With().Str("scope", s.id).Logger()
	s.log.Debug().Msg("scope begin")
	return s, nil
}

// ID returns the scope identifier used in logs.
func (s *Scope) ID() string { return s.id }

// Execute runs a DDL/DML statement inside the scope's transaction.
func (s *Scope) Execute(stmt types.Statement) (int64, error) {
	if s.state != scopeActive {
		return 0, types.ErrScopeFinished
	}
	return execute(s.tx, s.conn.driver, s.log, stmt)
}

// Query runs a SELECT inside the scope's transaction.
func (s *Scope) Query(stmt types.Statement, opts types.Options) (*types.Result, error) {
	if s.state != scopeActive {
		return nil, types.ErrScopeFinished
	}
	return query(s.tx, s.conn.driver, s.log, stmt, opts)
}

// SetRollbackOnly forces the scope to roll back at exit even if no failure
// occurs.
func (s *Scope) SetRollbackOnly() error {
	if s.state != scopeActive {
		return types.ErrScopeFinished
	}
	s.rollbackOnly = true
	return nil
}

// UnsetRollbackOnly clears the rollback-only flag.
func (s *Scope) UnsetRollbackOnly() error {
	if s.state != scopeActive {
		return types.ErrScopeFinished
	}
	s.rollbackOnly = false
	return nil
}

// IsRollbackOnly reports the rollback-only flag. It is always false for a
// freshly begun scope.
func (s *Scope) IsRollbackOnly() bool { return s.rollbackOnly }

// Commit commits the transaction and finishes the scope.
func (s *Scope) Commit() error {
	if s.state != scopeActive {
		return types.ErrScopeFinished
	}
	s.state = scopeCommitted
	if err := s.tx.Commit(); err != nil {
		return &types.ExecError{SQL: "COMMIT", Err: err}
	}
	s.log.Debug().Msg("scope committed")
	return nil
}

// Rollback discards all writes since Begin and finishes the scope.
func (s *Scope) Rollback() error {
	if s.state != scopeActive {
		return types.ErrScopeFinished
	}
	s.state = scopeRolledBack
	if err := s.tx.Rollback(); err != nil {
		return &types.ExecError{SQL: "ROLLBACK", Err: err}
	}
	s.log.Debug().Msg("scope rolled back")
	return nil
}

// InScope runs fn inside a transaction scope and guarantees commit-or-
// rollback on every exit path. A normal return commits unless the
// rollback-only flag is set. An error from fn rolls back and comes back to
// the caller unchanged. A panic rolls back and re-panics.
func (c *Conn) InScope(fn func(*Scope) error) error {
	s, err := c.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = s.Rollback()
			panic(p)
		}
	}()

	if err := fn(s); err != nil {
		if rbErr := s.Rollback(); rbErr != nil {
			s.log.Error().Err(rbErr).Msg("rollback after failure")
		}
		return err
	}

	if s.IsRollbackOnly() {
		return s.Rollback()
	}
	return s.Commit()
}
