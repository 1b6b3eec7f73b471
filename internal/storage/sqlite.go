// Package storage provides SQLite-based persistence for authored levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the level library.
type Store struct {
	db *sql.DB
}

// LevelEntry represents a single stored level record.
type LevelEntry struct {
	ID        int64
	Name      string
	Size      int
	TileCount int
	Par       int
	Doc       string // The level record as YAML, the on-disk interchange form
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			size INTEGER NOT NULL,
			tile_count INTEGER NOT NULL,
			par INTEGER NOT NULL,
			doc TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_size ON levels(size);
		CREATE INDEX IF NOT EXISTS idx_levels_size_par ON levels(size, par);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel records a new level in the library.
// Returns the ID of the inserted record.
func (s *Store) SaveLevel(name string, size, tileCount, par int, doc string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO levels (name, size, tile_count, par, doc) VALUES (?, ?, ?, ?, ?)",
		name, size, tileCount, par, doc,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LevelByID retrieves a stored level by its ID.
// Returns nil without error when no such level exists.
func (s *Store) LevelByID(id int64) (*LevelEntry, error) {
	var e LevelEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, size, tile_count, par, doc, created_at
		 FROM levels
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Name, &e.Size, &e.TileCount, &e.Par, &e.Doc, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}

	return &e, nil
}

// ListLevels retrieves the most recently added levels.
func (s *Store) ListLevels(limit int) ([]LevelEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, size, tile_count, par, doc, created_at
		 FROM levels
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		var e LevelEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Size, &e.TileCount, &e.Par, &e.Doc, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LevelsBySize retrieves levels for a given board size, easiest first.
func (s *Store) LevelsBySize(size, limit int) ([]LevelEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, size, tile_count, par, doc, created_at
		 FROM levels
		 WHERE size = ?
		 ORDER BY par ASC, id ASC
		 LIMIT ?`,
		size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		var e LevelEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Size, &e.TileCount, &e.Par, &e.Doc, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteLevel removes a stored level by ID.
func (s *Store) DeleteLevel(id int64) error {
	_, err := s.db.Exec("DELETE FROM levels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	return nil
}

// LibraryStats contains aggregated statistics for the level library.
type LibraryStats struct {
	Levels    int
	Sizes     int
	MinPar    int
	MaxPar    int
	AvgPar    float64
	LastAdded time.Time
}

// Stats retrieves aggregated statistics over all stored levels.
func (s *Store) Stats() (*LibraryStats, error) {
	stats := &LibraryStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT size),
		        COALESCE(MIN(par), 0), COALESCE(MAX(par), 0), COALESCE(AVG(par), 0)
		 FROM levels`,
	).Scan(&stats.Levels, &stats.Sizes, &stats.MinPar, &stats.MaxPar, &stats.AvgPar)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get library stats: %w", err)
	}

	var lastAdded any
	err = s.db.QueryRow(
		`SELECT created_at FROM levels ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastAdded)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last added: %w", err)
	}
	if err == nil {
		switch v := lastAdded.(type) {
		case time.Time:
			stats.LastAdded = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastAdded = parsed
			}
		}
	}

	return stats, nil
}
