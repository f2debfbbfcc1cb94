// Package history provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// History is best-effort everywhere: callers treat a nil *Store as
// "no history" and the game runs fine without it.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Entry is one finished round.
type Entry struct {
	ID         int64
	Mode       string // "story", "solo", or "duel"
	LevelIdx   int    // story level index, -1 for quick modes
	LevelName  string // empty for quick modes
	Word       string
	Won        bool
	ErrorsUsed int
	TimeLeft   int // seconds remaining, 0 for untimed rounds
	Reward     int // points granted, 0 outside story mode
	CreatedAt  time.Time
}

// Stats aggregates one mode's history.
type Stats struct {
	Mode        string
	Rounds      int
	Wins        int
	BestReward  int
	TotalReward int64
	LastPlayed  time.Time
}

// DefaultPath returns ~/.pendu/history.db, falling back to the working
// directory when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pendu.history.db"
	}
	return filepath.Join(home, ".pendu", "history.db")
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("history: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("history: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			level_idx INTEGER NOT NULL DEFAULT -1,
			level_name TEXT NOT NULL DEFAULT '',
			word TEXT NOT NULL DEFAULT '',
			won INTEGER NOT NULL,
			errors_used INTEGER NOT NULL DEFAULT 0,
			time_left INTEGER NOT NULL DEFAULT 0,
			reward INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_mode ON rounds(mode);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(mode, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores one finished round and returns the inserted row ID.
func (s *Store) Record(e Entry) (int64, error) {
	if s == nil {
		return 0, nil
	}
	won := 0
	if e.Won {
		won = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO rounds (mode, level_idx, level_name, word, won, errors_used, time_left, reward)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Mode, e.LevelIdx, e.LevelName, e.Word, won, e.ErrorsUsed, e.TimeLeft, e.Reward,
	)
	if err != nil {
		return 0, fmt.Errorf("history: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("history: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Recent retrieves the most recent rounds for the given mode, newest first.
// An empty mode matches every mode.
func (s *Store) Recent(mode string, limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, mode, level_idx, level_name, word, won, errors_used, time_left, reward, created_at
	          FROM rounds`
	args := []any{}
	if mode != "" {
		query += ` WHERE mode = ?`
		args = append(args, mode)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var won int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.LevelIdx, &e.LevelName, &e.Word,
			&won, &e.ErrorsUsed, &e.TimeLeft, &e.Reward, &createdAt); err != nil {
			return nil, fmt.Errorf("history: cannot scan row: %w", err)
		}
		e.Won = won != 0
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: row iteration error: %w", err)
	}
	return entries, nil
}

// ModeStats aggregates the history for one mode.
func (s *Store) ModeStats(mode string) (*Stats, error) {
	if s == nil {
		return &Stats{Mode: mode}, nil
	}
	stats := &Stats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(reward), 0), COALESCE(SUM(reward), 0)
		 FROM rounds WHERE mode = ?`,
		mode,
	).Scan(&stats.Rounds, &stats.Wins, &stats.BestReward, &stats.TotalReward)
	if err != nil {
		return nil, fmt.Errorf("history: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("history: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Clear deletes every round for the given mode; an empty mode clears all.
func (s *Store) Clear(mode string) error {
	if s == nil {
		return nil
	}
	var err error
	if mode == "" {
		_, err = s.db.Exec("DELETE FROM rounds")
	} else {
		_, err = s.db.Exec("DELETE FROM rounds WHERE mode = ?", mode)
	}
	if err != nil {
		return fmt.Errorf("history: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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
