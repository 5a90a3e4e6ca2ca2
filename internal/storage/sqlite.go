// Package storage provides SQLite-based persistence for the leaderboard
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

// Store manages the SQLite database connection. It is safe for concurrent
// use; SSH sessions share one Store.
type Store struct {
	db *sql.DB
}

// LeaderboardRow is one persisted leaderboard position.
type LeaderboardRow struct {
	Rank  int
	Score int
	Date  string
}

// RunRecord is the full result of one run.
type RunRecord struct {
	ID          int64
	RunID       string // Generated when empty
	GameID      string
	MissionID   int
	Score       int
	Outcome     string
	Diagnosis   string
	Triangles   int
	Rectangles  int
	Diamonds    int
	Red         int
	Green       int
	Blue        int
	Avoided     int
	RuntimeSecs int
	CreatedAt   time.Time
}

// RunSummary contains aggregated statistics over a game's runs.
type RunSummary struct {
	GameID     string
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Successes  int
	Failures   int
	Crashes    int
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
		CREATE TABLE IF NOT EXISTS leaderboard (
			game_id TEXT NOT NULL,
			rank INTEGER NOT NULL,
			score INTEGER NOT NULL,
			date TEXT NOT NULL,
			PRIMARY KEY (game_id, rank)
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			mission_id INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			diagnosis TEXT NOT NULL DEFAULT '',
			triangles INTEGER NOT NULL DEFAULT 0,
			rectangles INTEGER NOT NULL DEFAULT 0,
			diamonds INTEGER NOT NULL DEFAULT 0,
			red INTEGER NOT NULL DEFAULT 0,
			green INTEGER NOT NULL DEFAULT 0,
			blue INTEGER NOT NULL DEFAULT 0,
			avoided INTEGER NOT NULL DEFAULT 0,
			runtime_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
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

// LoadLeaderboard returns the stored leaderboard for a game in rank order.
// Rows with a negative score are skipped.
func (s *Store) LoadLeaderboard(gameID string) ([]LeaderboardRow, error) {
	rows, err := s.db.Query(
		`SELECT rank, score, date
		 FROM leaderboard
		 WHERE game_id = ?
		 ORDER BY rank`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardRow
	for rows.Next() {
		var e LeaderboardRow
		if err := rows.Scan(&e.Rank, &e.Score, &e.Date); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if e.Score < 0 {
			continue
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SaveLeaderboard replaces a game's leaderboard in one transaction. Ranks
// are assigned from slice order starting at 1.
func (s *Store) SaveLeaderboard(gameID string, entries []LeaderboardRow) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			//nolint:errcheck // Rollback after a failed statement
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM leaderboard WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}

	for i, e := range entries {
		if _, err = tx.Exec(
			"INSERT INTO leaderboard (game_id, rank, score, date) VALUES (?, ?, ?, ?)",
			gameID, i+1, e.Score, e.Date,
		); err != nil {
			return fmt.Errorf("storage: cannot save leaderboard entry: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit leaderboard: %w", err)
	}
	return nil
}

// SaveRun records a finished run. A missing RunID is generated.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, mission_id, score, outcome, diagnosis,
		  triangles, rectangles, diamonds, red, green, blue, avoided, runtime_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.MissionID, r.Score, r.Outcome, r.Diagnosis,
		r.Triangles, r.Rectangles, r.Diamonds, r.Red, r.Green, r.Blue, r.Avoided, r.RuntimeSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, game_id, mission_id, score, outcome, diagnosis,
	triangles, rectangles, diamonds, red, green, blue, avoided, runtime_secs, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.RunID, &r.GameID, &r.MissionID, &r.Score, &r.Outcome, &r.Diagnosis,
		&r.Triangles, &r.Rectangles, &r.Diamonds, &r.Red, &r.Green, &r.Blue,
		&r.Avoided, &r.RuntimeSecs, &createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// RunByID retrieves a run by its run ID. Returns nil when it doesn't exist.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// TopRuns retrieves the N best runs for a game, highest score first.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentRuns retrieves the N most recent runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest recorded run score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Summary aggregates every recorded run of a game.
func (s *Store) Summary(gameID string) (*RunSummary, error) {
	sum := &RunSummary{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(outcome = 'success'), 0),
		        COALESCE(SUM(outcome = 'failure'), 0),
		        COALESCE(SUM(outcome = 'crashed'), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Runs, &sum.HighScore, &sum.AvgScore, &sum.TotalScore,
		&sum.Successes, &sum.Failures, &sum.Crashes, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run summary: %w", err)
	}
	sum.LastPlayed = parseTimestamp(lastPlayed)

	return sum, nil
}

// Clear deletes the leaderboard and run history of the given game.
func (s *Store) Clear(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM leaderboard WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from SQLite.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
