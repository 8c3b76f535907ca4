// Package storage persists run results and player settings in SQLite.
// Uses the pure-Go modernc.org/sqlite driver so the game builds without CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

const settingMuted = "muted"

// Store manages the SQLite connection
type Store struct {
	db *sql.DB
}

// Result is one finished run
type Result struct {
	ID        int64
	Level     string
	Won       bool
	Coins     int
	Duration  time.Duration // simulated time until the outcome was decided
	CreatedAt time.Time
}

// Open creates or opens a database at path.
// It creates the parent directories if needed and runs migrations.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			won INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_level ON results(level);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished run and returns its ID.
// A zero CreatedAt is stamped with the current time.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.Exec(
		"INSERT INTO results (level, won, coins, duration_ms, created_at) VALUES (?, ?, ?, ?, ?)",
		r.Level, r.Won, r.Coins, r.Duration.Milliseconds(), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Results returns the latest results, newest first. An empty level matches all levels.
func (s *Store) Results(level string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, won, coins, duration_ms, created_at
		 FROM results
		 WHERE ? = '' OR level = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var durationMs, createdAt int64
		if err := rows.Scan(&r.ID, &r.Level, &r.Won, &r.Coins, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestTime returns the fastest win on level. ok is false when the level was never won.
func (s *Store) BestTime(level string) (best time.Duration, ok bool, err error) {
	var ms sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM results WHERE level = ? AND won = 1",
		level,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !ms.Valid {
		return 0, false, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// Muted returns the persisted mute flag, false if never set
func (s *Store) Muted() (bool, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingMuted).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot read setting: %w", err)
	}

	muted, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("storage: bad %s setting %q: %w", settingMuted, v, err)
	}
	return muted, nil
}

// SetMuted persists the mute flag
func (s *Store) SetMuted(muted bool) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingMuted, strconv.FormatBool(muted),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting: %w", err)
	}
	return nil
}
