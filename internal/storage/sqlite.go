// Package storage provides the SQLite dream journal: a history of finished
// dreams that the CLI can list and summarize. Entries are never loaded back
// into a running session.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// DreamEntry is one finished dream.
type DreamEntry struct {
	ID         int64
	Dreamer    string // "local" or the SSH user
	Theme      string
	MazeWidth  int
	MazeHeight int
	Items      []string // In collection order
	Duration   float64  // Seconds
	CreatedAt  time.Time
}

// WorldStats aggregates the dreams spent in one world.
type WorldStats struct {
	Theme         string
	Dreams        int
	TotalDuration float64
	ItemsFound    int
	LastDreamt    time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS dreams (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dreamer TEXT NOT NULL DEFAULT 'local',
			theme TEXT NOT NULL,
			maze_width INTEGER NOT NULL,
			maze_height INTEGER NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_dreams_theme ON dreams(theme);

		CREATE TABLE IF NOT EXISTS dream_items (
			dream_id INTEGER NOT NULL REFERENCES dreams(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (dream_id, position)
		);
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

// SaveDream records a finished dream and its items in one transaction.
// Returns the ID of the inserted record.
func (s *Store) SaveDream(e DreamEntry) (int64, error) {
	if e.Dreamer == "" {
		e.Dreamer = "local"
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO dreams (dreamer, theme, maze_width, maze_height, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Dreamer, e.Theme, e.MazeWidth, e.MazeHeight, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save dream: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, name := range e.Items {
		if _, err := tx.Exec(
			"INSERT INTO dream_items (dream_id, position, name) VALUES (?, ?, ?)",
			id, i, name,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save dream item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit dream: %w", err)
	}
	return id, nil
}

// RecentDreams retrieves the latest dreams, newest first.
func (s *Store) RecentDreams(limit int) ([]DreamEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, dreamer, theme, maze_width, maze_height, duration_secs, created_at
		 FROM dreams
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query dreams: %w", err)
	}
	defer rows.Close()

	var entries []DreamEntry
	for rows.Next() {
		var e DreamEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Dreamer, &e.Theme, &e.MazeWidth, &e.MazeHeight, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range entries {
		items, err := s.dreamItems(entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Items = items
	}
	return entries, nil
}

func (s *Store) dreamItems(dreamID int64) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT name FROM dream_items WHERE dream_id = ? ORDER BY position",
		dreamID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query dream items: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan item: %w", err)
		}
		items = append(items, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return items, nil
}

// DreamByID retrieves a single dream. Returns nil when it does not exist.
func (s *Store) DreamByID(id int64) (*DreamEntry, error) {
	var e DreamEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, dreamer, theme, maze_width, maze_height, duration_secs, created_at
		 FROM dreams WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Dreamer, &e.Theme, &e.MazeWidth, &e.MazeHeight, &e.Duration, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query dream: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)

	if e.Items, err = s.dreamItems(e.ID); err != nil {
		return nil, err
	}
	return &e, nil
}

// WorldStats aggregates the journal per dream world, most visited first.
func (s *Store) WorldStats() ([]WorldStats, error) {
	rows, err := s.db.Query(
		`SELECT d.theme, COUNT(*), COALESCE(SUM(d.duration_secs), 0),
		        COALESCE(SUM((SELECT COUNT(*) FROM dream_items i WHERE i.dream_id = d.id)), 0),
		        MAX(d.created_at)
		 FROM dreams d
		 GROUP BY d.theme
		 ORDER BY COUNT(*) DESC, d.theme`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get world stats: %w", err)
	}
	defer rows.Close()

	var stats []WorldStats
	for rows.Next() {
		var ws WorldStats
		var lastDreamt any
		if err := rows.Scan(&ws.Theme, &ws.Dreams, &ws.TotalDuration, &ws.ItemsFound, &lastDreamt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ws.LastDreamt = parseTime(lastDreamt)
		stats = append(stats, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearDreams deletes the whole journal.
func (s *Store) ClearDreams() error {
	if _, err := s.db.Exec("DELETE FROM dream_items; DELETE FROM dreams;"); err != nil {
		return fmt.Errorf("storage: cannot clear dreams: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
