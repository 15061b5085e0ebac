package types

// Record maps column names to scalar values. It serves both as an
// insert/update payload and as a query result row. Values are
// dynamically typed: int64, float64, string, bool, []byte, or nil.
type Record = map[string]any

// Predicate maps column names to expected values. Entries combine with AND
// semantics and translate to a parameterized WHERE clause; equality is the
// only supported comparison. A nil Predicate means "no filter".
type Predicate = map[string]any
