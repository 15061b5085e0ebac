// Shared helpers for skillet CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/skillet/internal/paths"
	"github.com/mesh-intelligence/skillet/pkg/skillet"
	"github.com/mesh-intelligence/skillet/pkg/types"
)

// openConn builds a Descriptor from the loaded config and flag overrides and
// opens a connection. The caller must defer conn.Close().
func openConn() (*skillet.Conn, error) {
	driver := cfg.Driver
	if flagDriver != "" {
		driver = flagDriver
	}

	database, err := paths.ResolveDatabase(flagDatabase, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("resolve database: %w", err)
	}

	conn, err := skillet.Open(types.Descriptor{
		Driver:   driver,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Database: database,
		User:     cfg.User,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, err
	}
	return conn.WithLogger(logger()), nil
}

// parseArgs converts CLI statement arguments into typed scalars: "null"
// binds nil, integers and floats bind as numbers, "true"/"false" as
// booleans, everything else as a string.
func parseArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = parseScalar(a)
	}
	return out
}

func parseScalar(s string) any {
	switch strings.ToLower(s) {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// printRecords writes query records as JSON or one "col=value" line per record.
func printRecords(records []types.Record) error {
	if flagJSON {
		return printJSON(records)
	}
	for _, rec := range records {
		parts := make([]string, 0, len(rec))
		for _, k := range sortedKeys(rec) {
			parts = append(parts, fmt.Sprintf("%s=%v", k, rec[k]))
		}
		fmt.Println(strings.Join(parts, " "))
	}
	return nil
}

// printGrid writes the tabular shape: header line, then one line per row.
func printGrid(grid *types.Grid) error {
	if flagJSON {
		return printJSON(grid)
	}
	fmt.Println(strings.Join(grid.Columns, "\t"))
	for _, row := range grid.Rows {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = fmt.Sprintf("%v", v)
		}
		fmt.Println(strings.Join(parts, "\t"))
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sortedKeys(rec types.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
