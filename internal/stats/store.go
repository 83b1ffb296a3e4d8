// Package stats persists play statistics and calculator history in a small
// SQLite database. Recording failures are reported to the caller but are
// never fatal to a running game.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite connection.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS game_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		app TEXT NOT NULL,
		won BOOLEAN NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		played_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pomodoro_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		work_minutes INTEGER NOT NULL,
		cycles INTEGER NOT NULL,
		finished_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS calc_history (
		hash INTEGER PRIMARY KEY,
		expression TEXT NOT NULL,
		result REAL NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_game_results_app ON game_results(app);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// RecordGame stores the outcome of one finished game round.
func (s *Store) RecordGame(app string, won bool, score int) error {
	_, err := s.db.Exec(
		"INSERT INTO game_results (app, won, score, played_at) VALUES (?, ?, ?, ?)",
		app, won, score, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}
	return nil
}

// RecordPomodoro stores a finished pomodoro session.
func (s *Store) RecordPomodoro(workMinutes, cycles int) error {
	_, err := s.db.Exec(
		"INSERT INTO pomodoro_sessions (work_minutes, cycles, finished_at) VALUES (?, ?, ?)",
		workMinutes, cycles, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record pomodoro session: %w", err)
	}
	return nil
}

// RecordCalc stores an evaluated expression. Entries are keyed by the
// xxhash of the normalized expression, so re-evaluating the same input
// refreshes its timestamp instead of duplicating it.
func (s *Store) RecordCalc(normalized string, result float64) error {
	hash := int64(xxhash.Sum64String(normalized))
	_, err := s.db.Exec(
		`INSERT INTO calc_history (hash, expression, result, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(hash) DO UPDATE SET result = excluded.result, created_at = excluded.created_at`,
		hash, normalized, result, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record expression: %w", err)
	}
	return nil
}

// GameSummary aggregates results for one app.
type GameSummary struct {
	App    string
	Played int
	Won    int
}

// WinRate returns the win percentage for the app.
func (g GameSummary) WinRate() float64 {
	if g.Played == 0 {
		return 0
	}
	return float64(g.Won) / float64(g.Played) * 100
}

// GameSummaries returns per-app aggregates, ordered by app name.
func (s *Store) GameSummaries() ([]GameSummary, error) {
	rows, err := s.db.Query(
		"SELECT app, COUNT(*), SUM(won) FROM game_results GROUP BY app ORDER BY app",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var summaries []GameSummary
	for rows.Next() {
		var summary GameSummary
		if err := rows.Scan(&summary.App, &summary.Played, &summary.Won); err != nil {
			return nil, fmt.Errorf("failed to scan game summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// PomodoroSummary aggregates all recorded sessions.
type PomodoroSummary struct {
	Sessions         int
	TotalWorkMinutes int
	TotalCycles      int
}

// PomodoroTotals returns the aggregate over all recorded sessions.
func (s *Store) PomodoroTotals() (PomodoroSummary, error) {
	var summary PomodoroSummary
	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(work_minutes), 0), COALESCE(SUM(cycles), 0) FROM pomodoro_sessions",
	).Scan(&summary.Sessions, &summary.TotalWorkMinutes, &summary.TotalCycles)
	if err != nil {
		return PomodoroSummary{}, fmt.Errorf("failed to query pomodoro sessions: %w", err)
	}
	return summary, nil
}

// CalcEntry is one stored calculator evaluation.
type CalcEntry struct {
	Expression string
	Result     float64
	CreatedAt  time.Time
}

// RecentCalcs returns the most recently evaluated expressions.
func (s *Store) RecentCalcs(limit int) ([]CalcEntry, error) {
	rows, err := s.db.Query(
		"SELECT expression, result, created_at FROM calc_history ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query calc history: %w", err)
	}
	defer rows.Close()

	var entries []CalcEntry
	for rows.Next() {
		var entry CalcEntry
		if err := rows.Scan(&entry.Expression, &entry.Result, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calc entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
