// Exec command: run a DDL/DML statement.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

var execCmd = &cobra.Command{
	Use:   "exec <sql> [args...]",
	Short: "Execute a DDL/DML statement and print the affected-row count",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openConn()
		if err != nil {
			return err
		}
		defer conn.Close()

		n, err := conn.Execute(types.Statement{
			SQL:  args[0],
			Args: parseArgs(args[1:]),
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]int64{"affected": n})
		}
		fmt.Println(n)
		return nil
	},
}
