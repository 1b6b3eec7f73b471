package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravets/onetile/core"
	"github.com/mkravets/onetile/internal/config"
	"github.com/mkravets/onetile/internal/storage"
	"github.com/mkravets/onetile/levels/formats"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagTiles      int
	flagMinValue   int
	flagMaxValue   int
	flagWildcards  int
	flagAttempts   int
	flagMoveLimit  int
	flagOut        string
	flagName       string
	flagSave       bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a solvable level",
	Long: `Generate a random board that is guaranteed reducible to a single tile.

The level is written as YAML to stdout, or to a file with --out. Tile
values are renumbered to start from 1, and par records the minimal
number of merges needed to finish the board.

Difficulty options:
  easy   - 3x3 board, 4 tiles with one wildcard, values 1-5
  normal - 3x3 board, 5 tiles, values 1-7
  hard   - 4x4 board, 8 tiles, values 1-9
  custom - Use config file values as-is

Examples:
  onetile gen
  onetile gen --difficulty hard
  onetile gen --size 4 --tiles 7 --wildcards 1
  onetile gen --seed 42 --out levels/daily.yaml
  onetile gen --save --name "Morning warmup"`,
	Run: runGen,
}

func init() {
	genCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom generation config YAML")
	genCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	genCmd.Flags().IntVar(&flagSize, "size", 0, "Board side length")
	genCmd.Flags().IntVar(&flagTiles, "tiles", 0, "Number of tiles to place")
	genCmd.Flags().IntVar(&flagMinValue, "min", 0, "Lowest tile value")
	genCmd.Flags().IntVar(&flagMaxValue, "max", 0, "Highest tile value")
	genCmd.Flags().IntVar(&flagWildcards, "wildcards", 0, "Wildcard tiles out of the tile count")
	genCmd.Flags().IntVar(&flagAttempts, "attempts", 0, "Generation attempts before giving up")
	genCmd.Flags().IntVar(&flagMoveLimit, "limit", 0, "Solvability search depth cap (0 = derived from tile count)")
	genCmd.Flags().StringVar(&flagOut, "out", "", "Write level YAML to file instead of stdout")
	genCmd.Flags().StringVar(&flagName, "name", "", "Level name recorded in the output")
	genCmd.Flags().BoolVar(&flagSave, "save", false, "Store the level in the library database")
}

func runGen(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.KnownPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Valid presets: easy, normal, hard, custom")
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	// Flags override config values when set explicitly
	if cmd.Flags().Changed("size") {
		cfg.Generator.GridSize = flagSize
	}
	if cmd.Flags().Changed("tiles") {
		cfg.Generator.TileCount = flagTiles
	}
	if cmd.Flags().Changed("min") {
		cfg.Generator.MinValue = flagMinValue
	}
	if cmd.Flags().Changed("max") {
		cfg.Generator.MaxValue = flagMaxValue
	}
	if cmd.Flags().Changed("wildcards") {
		cfg.Generator.Wildcards = flagWildcards
	}
	if cmd.Flags().Changed("attempts") {
		cfg.Generator.MaxAttempts = flagAttempts
	}
	if cmd.Flags().Changed("limit") {
		cfg.Search.MoveLimit = flagMoveLimit
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	params := cfg.Params(seed)

	grid, err := core.Generate(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	limit := params.MoveLimit
	if limit <= 0 {
		limit = core.DefaultMoveLimit(grid.Occupied())
	}
	par, ok := core.MinMovesWithin(grid, limit)
	if !ok {
		// Generated boards are verified solvable, so this indicates a bug
		logger.Warn("could not establish minimal moves", "limit", limit)
	}

	name := flagName
	if name == "" {
		name = fmt.Sprintf("Generated %dx%d", grid.Size, grid.Size)
	}

	level := formats.FromGrid(grid, 0, name, par)
	data, err := formats.EncodeYAML(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding level: %v\n", err)
		os.Exit(1)
	}

	logger.Info("generated solvable board",
		"size", grid.Size,
		"tiles", grid.Occupied(),
		"par", par,
		"seed", seed,
	)

	if flagOut != "" {
		if err := os.WriteFile(flagOut, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOut, err)
			os.Exit(1)
		}
	} else {
		fmt.Print(string(data))
	}

	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening level database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := store.SaveLevel(name, grid.Size, grid.Occupied(), par, string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving level: %v\n", err)
			os.Exit(1)
		}
		logger.Info("level saved", "id", id, "name", name)
	}
}
