// Version command for the skillet CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/skillet/pkg/skillet"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the skillet version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("skillet", skillet.Version)
	},
}
