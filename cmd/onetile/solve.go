package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkravets/onetile/core"
	"github.com/mkravets/onetile/levels"
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Solve a level file and report minimal moves",
	Long: `Load a level file, decide whether the board can be reduced to a single
tile, and report the minimal number of merges.

If the file records a par that disagrees with the computed minimum,
both values are shown.

Examples:
  onetile solve levels/intro.yaml
  onetile solve ./daily.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) {
	path := args[0]

	loader := levels.NewLoader(filepath.Dir(path))
	lvl, err := loader.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := lvl.Name
	if name == "" {
		name = filepath.Base(path)
	}
	fmt.Printf("Level: %s\n", name)
	fmt.Println()
	for _, line := range strings.Split(lvl.Grid.String(), "\n") {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()

	tiles := lvl.Grid.Occupied()
	fmt.Printf("Tiles: %d\n", tiles)

	moves, ok := core.MinMoves(lvl.Grid)
	if !ok {
		fmt.Println("Solvable: no")
		fmt.Println()
		fmt.Println("No sequence of merges reduces this board to a single tile.")
		return
	}

	fmt.Println("Solvable: yes")
	if lvl.Par > 0 && lvl.Par != moves {
		fmt.Printf("Minimal moves: %d (level file records par %d)\n", moves, lvl.Par)
	} else {
		fmt.Printf("Minimal moves: %d\n", moves)
	}
}
