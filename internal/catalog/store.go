// Copyright Civic Data Works, 2026. All rights reserved.

// Package catalog persists a record of conversion runs in a small SQLite
// database, so past outputs can be listed without re-reading manifests.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/civicdata/district-tools/pkg/types"
)

// DefaultPath is the catalog database location when none is configured.
const DefaultPath = ".district-tools/catalog.db"

const defaultMaxResults = 20

// Run is one recorded conversion.
type Run struct {
	ID          int64     `json:"id"`
	Source      string    `json:"source"`
	Dest        string    `json:"dest"`
	Description string    `json:"description"`
	Features    int       `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store manages the conversion run catalog.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at cfg.Path, creating the
// parent directory and the schema as needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		dest TEXT NOT NULL,
		description TEXT,
		features INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Record appends one conversion run to the catalog.
func (s *Store) Record(ctx context.Context, r Run) error {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, dest, description, features, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Source, r.Dest, r.Description, r.Features, createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A non-positive limit
// falls back to the store's configured maximum.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, dest, description, features, created_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Source, &r.Dest, &r.Description, &r.Features, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = ts
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog rows: %w", err)
	}
	return runs, nil
}
