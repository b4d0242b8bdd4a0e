// Package storage keeps the history of benchmark runs in SQLite.
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

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded benchmark run of a scene.
type Run struct {
	ID          int64
	Scene       string
	Method      string
	ChunksX     int
	ChunksY     int
	Ticks       int64
	Bullets     int64 // bullets indexed, summed over ticks
	NarrowTests int64
	PlayerHits  int64
	EntityHits  int64
	Errors      int64
	MeanTickUS  float64
	CreatedAt   time.Time
}

// SceneStats aggregates every run of one scene.
type SceneStats struct {
	Scene      string
	Runs       int
	BestTickUS float64
	AvgTickUS  float64
	TotalTicks int64
	LastRun    time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			method TEXT NOT NULL,
			chunks_x INTEGER NOT NULL,
			chunks_y INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			bullets INTEGER NOT NULL DEFAULT 0,
			narrow_tests INTEGER NOT NULL DEFAULT 0,
			player_hits INTEGER NOT NULL DEFAULT 0,
			entity_hits INTEGER NOT NULL DEFAULT 0,
			errors INTEGER NOT NULL DEFAULT 0,
			mean_tick_us REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene ON runs(scene);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(scene, mean_tick_us ASC);
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

// SaveRun records a benchmark run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (scene, method, chunks_x, chunks_y, ticks, bullets, narrow_tests, player_hits, entity_hits, errors, mean_tick_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Scene, r.Method, r.ChunksX, r.ChunksY, r.Ticks, r.Bullets,
		r.NarrowTests, r.PlayerHits, r.EntityHits, r.Errors, r.MeanTickUS,
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

const runColumns = `id, scene, method, chunks_x, chunks_y, ticks, bullets,
		narrow_tests, player_hits, entity_hits, errors, mean_tick_us, created_at`

// RecentRuns returns the latest runs of scene, newest first. An empty scene
// returns runs of every scene.
func (s *Store) RecentRuns(scene string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows *sql.Rows
		err  error
	)
	if scene == "" {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs WHERE scene = ? ORDER BY id DESC LIMIT ?`,
			scene, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// FastestRuns returns the runs of scene with the lowest mean tick time.
func (s *Store) FastestRuns(scene string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE scene = ?
		 ORDER BY mean_tick_us ASC
		 LIMIT ?`,
		scene, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Scene, &r.Method, &r.ChunksX, &r.ChunksY, &r.Ticks, &r.Bullets,
			&r.NarrowTests, &r.PlayerHits, &r.EntityHits, &r.Errors, &r.MeanTickUS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// SceneStats returns aggregated figures for scene. A scene without runs
// yields zero stats.
func (s *Store) SceneStats(scene string) (*SceneStats, error) {
	stats := &SceneStats{Scene: scene}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(mean_tick_us), 0), COALESCE(AVG(mean_tick_us), 0),
		        COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM runs WHERE scene = ?`,
		scene,
	).Scan(&stats.Runs, &stats.BestTickUS, &stats.AvgTickUS, &stats.TotalTicks, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// ClearRuns deletes every run of scene.
func (s *Store) ClearRuns(scene string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scene = ?", scene)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
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
