package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravets/onetile/internal/storage"
)

var (
	flagListLimit int
	flagListSize  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels stored in the library",
	Long: `Show levels saved in the library database, most recent first.

Examples:
  onetile list
  onetile list --limit 50
  onetile list --size 4`,
	Run: runList,
}

func init() {
	listCmd.Flags().IntVar(&flagListLimit, "limit", 20, "Maximum number of levels to show")
	listCmd.Flags().IntVar(&flagListSize, "size", 0, "Only show levels with this board size")
}

func runList(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening level database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []storage.LevelEntry
	if flagListSize > 0 {
		entries, err = store.LevelsBySize(flagListSize, flagListLimit)
	} else {
		entries, err = store.ListLevels(flagListLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Level library")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No levels stored yet.")
		fmt.Println()
		fmt.Println("Run 'onetile gen --save' to add the first one.")
		return
	}

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %-5s  %-6s  %-4s  %s\n", "ID", maxNameLen, "Name", "Size", "Tiles", "Par", "Created")
	fmt.Printf("  %-5s  %-*s  %-5s  %-6s  %-4s  %s\n", "--", maxNameLen, "----", "----", "-----", "---", "-------")

	// Print levels
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-*s  %-5d  %-6d  %-4d  %s\n", e.ID, maxNameLen, e.Name, e.Size, e.TileCount, e.Par, dateStr)
	}

	fmt.Println()
	stats, err := store.Stats()
	if err == nil && stats.Levels > 0 {
		fmt.Printf("Library: %d levels across %d board sizes, par %d-%d\n", stats.Levels, stats.Sizes, stats.MinPar, stats.MaxPar)
	}
}
