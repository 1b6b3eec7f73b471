package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkravets/onetile/core"
)

func writeLevelFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func newTestDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeLevelFile(t, dir, "second.yaml", `
id: 2
name: "Second"
size: 2
par: 1
tiles:
  - {row: 0, col: 0, value: 1}
  - {row: 0, col: 1, value: 2}
`)
	writeLevelFile(t, dir, "first.yml", `
id: 1
name: "First"
size: 2
par: 0
tiles:
  - {row: 1, col: 1, value: 3}
`)
	writeLevelFile(t, dir, "broken.yaml", `
id: 9
size: 2
tiles:
  - {row: 5, col: 5, value: 1}
`)
	writeLevelFile(t, dir, "notes.txt", "not a level")

	return dir
}

func TestLoadAll(t *testing.T) {
	loader := NewLoader(newTestDir(t))

	levels, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	// The broken record and the text file are skipped
	if len(levels) != 2 {
		t.Fatalf("LoadAll = %d levels, want 2", len(levels))
	}

	// Sorted by ID regardless of filename order
	if levels[0].ID != 1 || levels[1].ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", levels[0].ID, levels[1].ID)
	}
	if levels[0].Name != "First" {
		t.Errorf("Name = %q, want First", levels[0].Name)
	}
}

func TestLoadFile(t *testing.T) {
	dir := newTestDir(t)
	loader := NewLoader(dir)

	lvl, err := loader.LoadFile(filepath.Join(dir, "second.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if lvl.ID != 2 || lvl.Size != 2 || lvl.Par != 1 {
		t.Errorf("level = id %d size %d par %d, want 2 2 1", lvl.ID, lvl.Size, lvl.Par)
	}
	if lvl.Grid == nil {
		t.Fatal("loaded level should carry its board")
	}
	if got := lvl.Grid.Get(core.C(0, 1)); got != core.Number(2) {
		t.Errorf("cell (0,1) = %v, want Number(2)", got)
	}
	if lvl.FilePath == "" {
		t.Error("loaded level should record its file path")
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	dir := newTestDir(t)
	loader := NewLoader(dir)

	if _, err := loader.LoadFile(filepath.Join(dir, "broken.yaml")); err == nil {
		t.Error("LoadFile should reject an out-of-bounds tile")
	}
}

func TestLoadByID(t *testing.T) {
	loader := NewLoader(newTestDir(t))

	lvl, err := loader.LoadByID(2)
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if lvl.Name != "Second" {
		t.Errorf("Name = %q, want Second", lvl.Name)
	}

	if _, err := loader.LoadByID(42); err == nil {
		t.Error("LoadByID should fail for a missing ID")
	}
}

func TestListIDs(t *testing.T) {
	loader := NewLoader(newTestDir(t))

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("ListIDs = %v, want [1 2]", ids)
	}
}
