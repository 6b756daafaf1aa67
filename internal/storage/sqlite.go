// Package storage provides SQLite-based persistence for finished games.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result records one finished game.
type Result struct {
	ID        int64
	Size      int
	Score     int
	MaxTile   int
	Won       bool
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// SizeStats contains aggregated statistics for one board size.
type SizeStats struct {
	Size       int
	GamesCount int
	HighScore  int
	AvgScore   float64
	WinsCount  int
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
			size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_size ON results(size);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(size, score DESC);
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

// SaveResult records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (size, score, max_tile, won, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Size, r.Score, r.MaxTile, r.Won, r.Moves, int(r.Duration.Seconds()),
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

// TopResults retrieves the top N results for the given board size,
// ordered by score descending.
func (s *Store) TopResults(size, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, size, score, max_tile, won, moves, duration_secs, created_at
		 FROM results
		 WHERE size = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

func scanResult(rows *sql.Rows) (Result, error) {
	var r Result
	var durationSecs int
	var createdAt any
	if err := rows.Scan(&r.ID, &r.Size, &r.Score, &r.MaxTile, &r.Won, &r.Moves, &durationSecs, &createdAt); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Duration = time.Duration(durationSecs) * time.Second

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// HighScore returns the highest score for the given board size.
// Returns 0 if no results exist.
func (s *Store) HighScore(size int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE size = ?",
		size,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// StatsForSize retrieves aggregated statistics for one board size.
func (s *Store) StatsForSize(size int) (*SizeStats, error) {
	stats := &SizeStats{Size: size}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(won), 0)
		 FROM results WHERE size = ?`,
		size,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.WinsCount)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all results for the given board size.
func (s *Store) ClearResults(size int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE size = ?", size)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
