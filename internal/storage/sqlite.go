// Package storage provides SQLite-based persistence for solve results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/dkotenko/picross/internal/core"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single recorded solve.
type ResultEntry struct {
	ID            int64
	Mode          string
	Seed          uint32
	Size          int
	Difficulty    string
	DurationTicks int
	Mistakes      int
	PlayedOn      string // UTC day in 2006-01-02 form, used for streaks
	CreatedAt     time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			size INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			duration_ticks INTEGER NOT NULL,
			mistakes INTEGER NOT NULL DEFAULT 0,
			played_on TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(mode, size, difficulty, duration_ticks ASC);
		CREATE INDEX IF NOT EXISTS idx_results_played_on ON results(mode, played_on);
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

// SaveResult records a completed solve.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r core.Result) (int64, error) {
	playedOn := time.Now().UTC().Format("2006-01-02")

	result, err := s.db.Exec(
		`INSERT INTO results (mode, seed, size, difficulty, duration_ticks, mistakes, played_on)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Seed, r.Size, r.Difficulty, r.Ticks, r.Mistakes, playedOn,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestResults retrieves the fastest solves for a board class, ordered by
// duration ascending with mistakes as tiebreaker.
func (s *Store) BestResults(mode string, size int, difficulty string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, size, difficulty, duration_ticks, mistakes, played_on, created_at
		 FROM results
		 WHERE mode = ? AND size = ? AND difficulty = ?
		 ORDER BY duration_ticks ASC, mistakes ASC
		 LIMIT ?`,
		mode, size, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// RecentResults retrieves the most recent solves across all modes.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, size, difficulty, duration_ticks, mistakes, played_on, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// scanResults reads ResultEntry rows from a query result.
func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Seed, &e.Size, &e.Difficulty,
			&e.DurationTicks, &e.Mistakes, &e.PlayedOn, &createdAt); err != nil {
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

// BestDuration returns the fastest solve in ticks for a board class.
// Returns 0 if no solves exist.
func (s *Store) BestDuration(mode string, size int, difficulty string) (int, error) {
	var ticks sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ticks) FROM results WHERE mode = ? AND size = ? AND difficulty = ?",
		mode, size, difficulty,
	).Scan(&ticks)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best duration: %w", err)
	}

	if !ticks.Valid {
		return 0, nil
	}

	return int(ticks.Int64), nil
}

// DailyStreak counts the consecutive UTC days ending today (or yesterday,
// when today's puzzle is not solved yet) on which a daily solve exists.
func (s *Store) DailyStreak(today time.Time) (int, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT played_on FROM results
		 WHERE mode = 'daily'
		 ORDER BY played_on DESC`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query daily days: %w", err)
	}
	defer rows.Close()

	days := make(map[string]bool)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return 0, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		days[day] = true
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("storage: row iteration error: %w", err)
	}

	cursor := today.UTC().Truncate(24 * time.Hour)
	if !days[cursor.Format("2006-01-02")] {
		// Today's puzzle is still open; the streak may continue from
		// yesterday.
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}

// SolveStats contains aggregated statistics for a mode.
type SolveStats struct {
	Mode          string
	Solves        int
	BestTicks     int
	AvgTicks      float64
	TotalMistakes int64
	LastPlayed    time.Time
}

// GetSolveStats retrieves aggregated statistics for a mode.
func (s *Store) GetSolveStats(mode string) (*SolveStats, error) {
	stats := &SolveStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ticks), 0), COALESCE(AVG(duration_ticks), 0), COALESCE(SUM(mistakes), 0)
		 FROM results WHERE mode = ?`,
		mode,
	).Scan(&stats.Solves, &stats.BestTicks, &stats.AvgTicks, &stats.TotalMistakes)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get solve stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}

// ClearResults deletes all results for the given mode.
func (s *Store) ClearResults(mode string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
