// Package storage provides SQLite-based persistence for simulation run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only run summaries are stored; generated geometry never leaves memory.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-climber/internal/storage/migrations"
)

// DefaultPath is where the CLI keeps its run history.
const DefaultPath = "~/.climber/runs.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is the stored summary of one simulation run.
type RunRecord struct {
	ID                int64
	Seed              int64
	Ticks             int
	FinalFrontier     float64
	RowsGenerated     int
	RowsRetired       int
	ObstaclesRetired  int
	Hazards           int
	Fallbacks         int
	PeakLiveObstacles int
	MaxDifficulty     float64
	GapViolations     int
	Patterns          map[string]int // Rows generated per pattern name
	CreatedAt         time.Time
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	logger *log.Logger
}

// WithLogger routes migration output to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(o *openOptions) {
		o.logger = l
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, opts ...Option) (*Store, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

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

	if err := store.migrate(context.Background(), o.logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate applies the embedded goose migrations.
func (s *Store) migrate(ctx context.Context, logger *log.Logger) error {
	goose.SetBaseFS(migrations.FS)
	if logger != nil {
		goose.SetLogger(logger)
	} else {
		goose.SetLogger(goose.NopLogger())
	}
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run summary and its pattern histogram.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs
		 (seed, ticks, final_frontier, rows_generated, rows_retired, obstacles_retired,
		  hazards, fallbacks, peak_live_obstacles, max_difficulty, gap_violations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Seed,
		run.Ticks,
		run.FinalFrontier,
		run.RowsGenerated,
		run.RowsRetired,
		run.ObstaclesRetired,
		run.Hazards,
		run.Fallbacks,
		run.PeakLiveObstacles,
		run.MaxDifficulty,
		run.GapViolations,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for pattern, count := range run.Patterns {
		if _, err := tx.Exec(
			"INSERT INTO run_patterns (run_id, pattern, row_count) VALUES (?, ?, ?)",
			id, pattern, count,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save pattern %s: %w", pattern, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

const runColumns = `id, seed, ticks, final_frontier, rows_generated, rows_retired,
	obstacles_retired, hazards, fallbacks, peak_live_obstacles, max_difficulty,
	gap_violations, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Seed,
		&r.Ticks,
		&r.FinalFrontier,
		&r.RowsGenerated,
		&r.RowsRetired,
		&r.ObstaclesRetired,
		&r.Hazards,
		&r.Fallbacks,
		&r.PeakLiveObstacles,
		&r.MaxDifficulty,
		&r.GapViolations,
		&createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// parseTimestamp handles both time.Time and string datetime values.
func parseTimestamp(v any) time.Time {
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

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
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

	for i := range runs {
		patterns, err := s.runPatterns(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Patterns = patterns
	}
	return runs, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.Patterns, err = s.runPatterns(id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) runPatterns(runID int64) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT pattern, row_count FROM run_patterns WHERE run_id = ?",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run patterns: %w", err)
	}
	defer rows.Close()

	patterns := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan pattern row: %w", err)
		}
		patterns[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return patterns, nil
}

// PatternTotal is the number of rows a pattern produced across all runs.
type PatternTotal struct {
	Pattern string
	Rows    int
}

// PatternTotals aggregates the pattern histogram over every stored run,
// ordered by pattern name.
func (s *Store) PatternTotals() ([]PatternTotal, error) {
	rows, err := s.db.Query(
		`SELECT pattern, SUM(row_count)
		 FROM run_patterns
		 GROUP BY pattern`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot aggregate patterns: %w", err)
	}
	defer rows.Close()

	var totals []PatternTotal
	for rows.Next() {
		var t PatternTotal
		if err := rows.Scan(&t.Pattern, &t.Rows); err != nil {
			return nil, fmt.Errorf("storage: cannot scan pattern total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i].Pattern < totals[j].Pattern })
	return totals, nil
}

// RunStats contains aggregated statistics over the stored runs.
type RunStats struct {
	Runs          int
	TotalRows     int64
	AvgRows       float64
	MaxDifficulty float64
	GapViolations int64
	LastRun       time.Time
}

// Stats aggregates every stored run.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}
	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(rows_generated), 0), COALESCE(AVG(rows_generated), 0),
		        COALESCE(MAX(max_difficulty), 0), COALESCE(SUM(gap_violations), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.TotalRows, &stats.AvgRows, &stats.MaxDifficulty, &stats.GapViolations, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastRun = parseTimestamp(lastRun)
	return stats, nil
}

// ClearRuns deletes every stored run.
func (s *Store) ClearRuns() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM run_patterns"); err != nil {
		return fmt.Errorf("storage: cannot clear run patterns: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}
