// Package storage provides SQLite-based persistence for runs, the coin
// wallet, and purchased upgrades.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished run.
type RunEntry struct {
	ID        int64
	Distance  float64
	Score     int
	Skips     int
	BestCombo int
	Coins     int
	CreatedAt time.Time
}

// LifetimeStats contains aggregated statistics across all runs.
type LifetimeStats struct {
	Runs         int
	BestScore    int
	BestDistance float64
	TotalSkips   int
	TotalCoins   int64
	AvgScore     float64
	LastPlayed   time.Time
}

// ErrInsufficientFunds is returned by SpendCoins when the wallet cannot
// cover the amount.
var ErrInsufficientFunds = errors.New("storage: insufficient funds")

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			distance REAL NOT NULL,
			score INTEGER NOT NULL,
			skips INTEGER NOT NULL DEFAULT 0,
			best_combo INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_distance ON runs(distance DESC);

		CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			coins INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO wallet (id, coins) VALUES (1, 0);

		CREATE TABLE IF NOT EXISTS upgrades (
			stat TEXT PRIMARY KEY,
			level INTEGER NOT NULL DEFAULT 0
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

// SaveRun records a finished run and banks its coins into the wallet in a
// single transaction. Returns the ID of the inserted run.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.Exec(
		"INSERT INTO runs (distance, score, skips, best_combo, coins) VALUES (?, ?, ?, ?, ?)",
		run.Distance, run.Score, run.Skips, run.BestCombo, run.Coins,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	if run.Coins > 0 {
		if _, err := tx.Exec("UPDATE wallet SET coins = coins + ? WHERE id = 1", run.Coins); err != nil {
			return 0, fmt.Errorf("storage: cannot bank coins: %w", err)
		}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, distance, score, skips, best_combo, coins, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Distance, &e.Score, &e.Skips, &e.BestCombo, &e.Coins, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score across all runs.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Lifetime retrieves aggregated statistics across every recorded run.
func (s *Store) Lifetime() (*LifetimeStats, error) {
	stats := &LifetimeStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(MAX(distance), 0),
		        COALESCE(SUM(skips), 0),
		        COALESCE(SUM(coins), 0),
		        COALESCE(AVG(score), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.BestScore, &stats.BestDistance, &stats.TotalSkips, &stats.TotalCoins, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get lifetime stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs. The wallet and upgrades survive.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Coins returns the current wallet balance.
func (s *Store) Coins() (int, error) {
	var coins int
	err := s.db.QueryRow("SELECT coins FROM wallet WHERE id = 1").Scan(&coins)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query wallet: %w", err)
	}
	return coins, nil
}

// AddCoins credits the wallet.
func (s *Store) AddCoins(amount int) error {
	if amount <= 0 {
		return nil
	}
	_, err := s.db.Exec("UPDATE wallet SET coins = coins + ? WHERE id = 1", amount)
	if err != nil {
		return fmt.Errorf("storage: cannot add coins: %w", err)
	}
	return nil
}

// SpendCoins debits the wallet, failing with ErrInsufficientFunds when the
// balance cannot cover the amount. The check and the debit run in one
// transaction.
func (s *Store) SpendCoins(amount int) error {
	if amount <= 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var coins int
	if err := tx.QueryRow("SELECT coins FROM wallet WHERE id = 1").Scan(&coins); err != nil {
		return fmt.Errorf("storage: cannot query wallet: %w", err)
	}
	if coins < amount {
		return ErrInsufficientFunds
	}

	if _, err := tx.Exec("UPDATE wallet SET coins = coins - ? WHERE id = 1", amount); err != nil {
		return fmt.Errorf("storage: cannot spend coins: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit spend: %w", err)
	}

	return nil
}

// UpgradeLevels returns the purchased level per stat. Stats never purchased
// are absent from the map.
func (s *Store) UpgradeLevels() (map[string]int, error) {
	rows, err := s.db.Query("SELECT stat, level FROM upgrades")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query upgrades: %w", err)
	}
	defer rows.Close()

	levels := make(map[string]int)
	for rows.Next() {
		var stat string
		var level int
		if err := rows.Scan(&stat, &level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan upgrade row: %w", err)
		}
		levels[stat] = level
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return levels, nil
}

// SetUpgradeLevel stores the purchased level for a stat.
func (s *Store) SetUpgradeLevel(stat string, level int) error {
	_, err := s.db.Exec(
		`INSERT INTO upgrades (stat, level) VALUES (?, ?)
		 ON CONFLICT(stat) DO UPDATE SET level = excluded.level`,
		stat, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set upgrade level: %w", err)
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
