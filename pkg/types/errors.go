package types

import (
	"errors"
	"fmt"
)

// Transaction scope errors.
var (
	// ErrScopeFinished is returned by any operation on a scope that has
	// already committed or rolled back.
	ErrScopeFinished = errors.New("transaction scope already finished")
)

// ConnError wraps a failure to open or close a connection.
type ConnError struct {
	Op  string // "open" or "close"
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("connection %s: %v", e.Op, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// ExecError wraps an engine-reported statement failure: syntax error,
// constraint violation, type mismatch. The engine error is carried verbatim,
// never reinterpreted.
type ExecError struct {
	SQL string
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing %q: %v", e.SQL, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }
