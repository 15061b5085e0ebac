// Package types defines the connection descriptor, statement, record, and
// query-option types for the skillet SQL access layer, along with its
// standard errors.
package types
