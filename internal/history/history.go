// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records fetch runs in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshintel/arxiv-harvest/pkg/types"
)

// Run is one recorded invocation of the fetch command.
type Run struct {
	ID            int64
	StartedAt     time.Time
	Query         string
	Requested     int
	Fetched       int
	MetadataLines int
	PDFs          int
	Summaries     int
	FullTexts     int
}

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			query TEXT NOT NULL,
			requested INTEGER NOT NULL,
			fetched INTEGER NOT NULL,
			metadata_lines INTEGER NOT NULL,
			pdfs INTEGER NOT NULL,
			summaries INTEGER NOT NULL,
			fulltexts INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_papers (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			paper_id TEXT NOT NULL,
			title TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_papers_run_id ON run_papers(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun inserts a run and its papers in one transaction and
// returns the new run's id.
func (s *Store) RecordRun(run Run, papers []types.Paper) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO runs (started_at, query, requested, fetched, metadata_lines, pdfs, summaries, fulltexts)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339), run.Query, run.Requested, run.Fetched,
		run.MetadataLines, run.PDFs, run.Summaries, run.FullTexts)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, p := range papers {
		if _, err := tx.Exec(
			`INSERT INTO run_papers (run_id, paper_id, title) VALUES (?, ?, ?)`,
			id, p.ID, p.Title); err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// ListRuns returns up to limit runs, most recent first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, query, requested, fetched, metadata_lines, pdfs, summaries, fulltexts
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Query, &r.Requested, &r.Fetched,
			&r.MetadataLines, &r.PDFs, &r.Summaries, &r.FullTexts); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, started); parseErr == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
