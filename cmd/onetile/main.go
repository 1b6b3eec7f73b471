// onetile is a generator and solver for the onetile merge puzzle.
//
// Usage:
//
//	onetile gen              - Generate a solvable level
//	onetile solve <file>     - Solve a level file and report minimal moves
//	onetile check <dir>      - Validate all level files in a directory
//	onetile list             - List levels stored in the library
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible generation (0 = time-based)
//	--db <path>     - Level library database path (default: ~/.onetile/levels.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   uint64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "onetile",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onetile",
	Short: "Onetile - solvable merge-puzzle generator",
	Long: `Onetile generates and analyzes merge puzzles: boards that reduce to a
single tile by merging adjacent tiles whose values differ by one.
Wildcard tiles accept any numbered neighbor.

Available commands:
  gen    - Generate a solvable level
  solve  - Solve a level file and report minimal moves
  check  - Validate level files in a directory
  list   - View the level library

Examples:
  onetile gen
  onetile gen --difficulty hard --save
  onetile solve levels/intro.yaml
  onetile check ./levels
  onetile list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.onetile/levels.db", "Path to level library database")

	// Add subcommands
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
}
