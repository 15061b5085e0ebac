// Root command for the skillet CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigDir string
	flagDriver    string
	flagDatabase  string
	flagVerbose   bool
	flagJSON      bool
)

// cfg holds the values loaded from config.yaml, set by PersistentPreRunE so
// all subcommands can use them.
var cfg cliConfig

var rootCmd = &cobra.Command{
	Use:   "skillet",
	Short: "Skillet runs parameterized SQL against a configured database",
	Long: `Skillet is a small shell over the skillet SQL access layer. It opens a
connection described by config.yaml (or flags), executes parameterized
statements, and prints affected-row counts or result records.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(flagConfigDir)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "database driver (sqlite or pgx; overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "database path or name (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log statements to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(queryCmd)
}

// logger returns the statement logger: debug-level console output with
// --verbose, a no-op logger otherwise.
func logger() zerolog.Logger {
	if !flagVerbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}
