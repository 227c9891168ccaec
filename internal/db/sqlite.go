package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thesavant42/textbench/internal/models"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createRunsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create timing runs schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// ListResultFiles returns the .db files in the given directory
func ListResultFiles(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".db" {
			files = append(files, name)
		}
	}
	return files, nil
}

// InsertRun stores a single run and returns its row ID
func (db *DB) InsertRun(r models.TimingRun) (int64, error) {
	res, err := db.conn.Exec(insertRun, runArgs(r)...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s run: %w", r.Algo, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// InsertRuns inserts multiple runs in one transaction
func (db *DB) InsertRuns(runs []models.TimingRun) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertRun)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range runs {
		if _, err := stmt.Exec(runArgs(r)...); err != nil {
			return fmt.Errorf("failed to insert %s run n=%d: %w", r.Algo, r.N, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func runArgs(r models.TimingRun) []any {
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return []any{
		r.Algo,
		r.N,
		int64(r.K),
		r.InputPreview,
		r.OutputPreview,
		r.Elapsed.Nanoseconds(),
		r.ErrKind,
		created.UTC().Format(timeLayout),
	}
}

// buildRunQuery appends the filter's conditions to selectRuns
func buildRunQuery(filter models.RunFilter) (string, []any) {
	var where []string
	var args []any

	if filter.Algo != "" {
		where = append(where, "algo = ?")
		args = append(args, filter.Algo)
	}
	if filter.MinN > 0 {
		where = append(where, "n >= ?")
		args = append(args, filter.MinN)
	}
	if filter.MaxN > 0 {
		where = append(where, "n <= ?")
		args = append(args, filter.MaxN)
	}

	query := selectRuns
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += "ORDER BY id DESC\n"

	if filter.Limit > 0 {
		query += "LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	return query, args
}

// GetRuns returns stored runs matching the filter, newest first
func (db *DB) GetRuns(filter models.RunFilter) ([]models.TimingRun, error) {
	query, args := buildRunQuery(filter)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.TimingRun
	for rows.Next() {
		var r models.TimingRun
		var k, elapsed int64
		var created string
		if err := rows.Scan(&r.ID, &r.Algo, &r.N, &k, &r.InputPreview, &r.OutputPreview, &elapsed, &r.ErrKind, &created); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.K = uint(k)
		r.Elapsed = time.Duration(elapsed)
		if t, err := time.Parse(timeLayout, created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// GetAlgoStats returns min/mean/max elapsed time per algorithm and input size.
// An empty algo aggregates every algorithm.
func (db *DB) GetAlgoStats(algo string) ([]models.AlgoStats, error) {
	rows, err := db.conn.Query(selectAlgoStats, algo, algo)
	if err != nil {
		return nil, fmt.Errorf("failed to query algorithm stats: %w", err)
	}
	defer rows.Close()

	var stats []models.AlgoStats
	for rows.Next() {
		var s models.AlgoStats
		var minNS, meanNS, maxNS int64
		if err := rows.Scan(&s.Algo, &s.N, &s.Runs, &minNS, &meanNS, &maxNS); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		s.Min = time.Duration(minNS)
		s.Mean = time.Duration(meanNS)
		s.Max = time.Duration(maxNS)
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stats: %w", err)
	}

	return stats, nil
}

// CountRuns returns the number of stored runs for algo, or all runs when algo is empty
func (db *DB) CountRuns(algo string) (int, error) {
	var total int
	if err := db.conn.QueryRow(selectRunCount, algo, algo).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return total, nil
}

// DeleteRuns removes runs for algo, or every run when algo is empty
func (db *DB) DeleteRuns(algo string) (int64, error) {
	res, err := db.conn.Exec(deleteRuns, algo, algo)
	if err != nil {
		return 0, fmt.Errorf("failed to delete runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}
	return n, nil
}
