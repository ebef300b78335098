// Package storage provides SQLite-based persistence for finished match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// In-progress matches are never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is the outcome of one finished match.
type MatchRecord struct {
	ID            int64
	MatchID       string // UUID, generated on save when empty
	Mode          string // registry ID, e.g. "pong" or "pong_duel"
	ScoreLeft     int
	ScoreRight    int
	Winner        string // "left" or "right"
	DurationTicks int
	CreatedAt     time.Time
}

// ModeStats contains aggregated results for a mode.
type ModeStats struct {
	Mode       string
	Matches    int
	LeftWins   int
	RightWins  int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			score_left INTEGER NOT NULL DEFAULT 0,
			score_right INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(mode, created_at DESC);
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

// SaveMatch records a finished match and returns the stored record.
func (s *Store) SaveMatch(rec MatchRecord) (MatchRecord, error) {
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	} else if _, err := uuid.Parse(rec.MatchID); err != nil {
		return rec, fmt.Errorf("storage: invalid match id %q: %w", rec.MatchID, err)
	}
	if rec.Winner != "left" && rec.Winner != "right" {
		return rec, fmt.Errorf("storage: invalid winner %q", rec.Winner)
	}

	result, err := s.db.Exec(
		`INSERT INTO matches (match_id, mode, score_left, score_right, winner, duration_ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.Mode, rec.ScoreLeft, rec.ScoreRight, rec.Winner, rec.DurationTicks,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return rec, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	rec.ID = id

	return rec, nil
}

// MatchByID retrieves a match by its UUID. Returns nil if it doesn't exist.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	if _, err := uuid.Parse(matchID); err != nil {
		return nil, fmt.Errorf("storage: invalid match id %q: %w", matchID, err)
	}

	row := s.db.QueryRow(
		`SELECT id, match_id, mode, score_left, score_right, winner, duration_ticks, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)
	rec, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// An empty mode returns matches of every mode.
func (s *Store) RecentMatches(mode string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, mode, score_left, score_right, winner, duration_ticks, created_at
		 FROM matches
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearMatches deletes the history of a mode, or everything when mode is empty.
func (s *Store) ClearMatches(mode string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE ? = '' OR mode = ?", mode, mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// ModeStats retrieves aggregated results for a specific mode.
func (s *Store) ModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'left'), 0),
		        COALESCE(SUM(winner = 'right'), 0),
		        MAX(created_at)
		 FROM matches WHERE mode = ?`,
		mode,
	).Scan(&stats.Matches, &stats.LeftWins, &stats.RightWins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllModeStats retrieves statistics for every mode that has been played.
func (s *Store) AllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), SUM(winner = 'left'), SUM(winner = 'right'), MAX(created_at)
		 FROM matches
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var ms ModeStats
		var lastPlayed any
		if err := rows.Scan(&ms.Mode, &ms.Matches, &ms.LeftWins, &ms.RightWins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.LastPlayed = parseTime(lastPlayed)
		stats[ms.Mode] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchRecord, error) {
	var rec MatchRecord
	var createdAt any
	err := sc.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.Mode,
		&rec.ScoreLeft,
		&rec.ScoreRight,
		&rec.Winner,
		&rec.DurationTicks,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
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
