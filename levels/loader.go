// Package levels provides level file loading for onetile.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkravets/onetile/core"
	"github.com/mkravets/onetile/levels/formats"
)

// Level represents a complete, validated level: the record from disk
// plus the board it describes.
type Level struct {
	ID       int
	Name     string
	Size     int
	Par      int
	Grid     *core.Grid
	Metadata map[string]string
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", path, err)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", path, err)
	}

	grid, err := parsed.Grid()
	if err != nil {
		return Level{}, fmt.Errorf("levels: building %s: %w", path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Size:     parsed.Size,
		Par:      parsed.Par,
		Grid:     grid,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id int) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %d", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]int, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
