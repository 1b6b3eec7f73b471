package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkravets/onetile/core"
	"github.com/mkravets/onetile/levels"
	"github.com/mkravets/onetile/levels/formats"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate level files in a directory",
	Long: `Recursively check every level file in a directory: each file must
parse, describe a well-formed board, be solvable, and record a par
equal to the minimal number of merges.

Exits with status 1 if any file fails.

Examples:
  onetile check ./levels
  onetile check ~/.onetile/levels`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	root := args[0]
	loader := levels.NewLoader(root)

	var checked, failed int

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !levelFileExtension(filepath.Ext(path)) {
			return nil
		}

		display := path
		if rel, relErr := filepath.Rel(root, path); relErr == nil {
			display = rel
		}

		checked++
		if reason := checkLevelFile(loader, path); reason != "" {
			failed++
			fmt.Printf("  FAIL  %s  (%s)\n", display, reason)
		} else {
			fmt.Printf("  PASS  %s\n", display)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking %s: %v\n", root, err)
		os.Exit(1)
	}

	if checked == 0 {
		fmt.Printf("No level files found in %s.\n", root)
		return
	}

	fmt.Println()
	fmt.Printf("Checked %d level files: %d passed, %d failed.\n", checked, checked-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// checkLevelFile returns an empty string if the file is a valid solvable
// level, or a short failure reason otherwise.
func checkLevelFile(loader *levels.Loader, path string) string {
	lvl, err := loader.LoadFile(path)
	if err != nil {
		return err.Error()
	}

	moves, ok := core.MinMoves(lvl.Grid)
	if !ok {
		return "not solvable"
	}
	if lvl.Par > 0 && lvl.Par != moves {
		return fmt.Sprintf("par %d, minimal moves %d", lvl.Par, moves)
	}
	return ""
}

// levelFileExtension returns true for supported level file extensions.
func levelFileExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
