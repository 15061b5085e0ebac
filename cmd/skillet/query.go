// Query command: run a SELECT and print the result.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/skillet/pkg/types"
)

var flagTabular bool

var queryCmd = &cobra.Command{
	Use:   "query <sql> [args...]",
	Short: "Run a SELECT and print the result records",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openConn()
		if err != nil {
			return err
		}
		defer conn.Close()

		res, err := conn.Query(types.Statement{
			SQL:  args[0],
			Args: parseArgs(args[1:]),
		}, types.Options{AsTabular: flagTabular})
		if err != nil {
			return err
		}

		if flagTabular {
			return printGrid(res.Grid)
		}
		return printRecords(res.Records)
	},
}

func init() {
	queryCmd.Flags().BoolVar(&flagTabular, "tabular", false, "print a header row followed by value rows")
}
