// Package main provides the skillet CLI: a thin shell over the skillet SQL
// access layer for running parameterized statements against a configured
// database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps descriptor and statement validation failures to the
// user-error code; everything else is a system error.
func exitCode(err error) int {
	for _, sentinel := range []error{
		types.ErrDriverEmpty,
		types.ErrDriverUnknown,
		types.ErrDatabaseEmpty,
		types.ErrNoTable,
		types.ErrNoColumns,
		types.ErrBadIdentifier,
	} {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}
