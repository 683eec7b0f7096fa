// Package store wraps the DuckDB databases that hold the precomputed
// per-variant score tables. A Store is cheap to open and is acquired for
// the duration of a single lookup, never shared between calls.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Sentinel outcomes distinguished at every lookup boundary.
var (
	// ErrNotFound means the query executed successfully and matched zero
	// rows. It is an outcome, not a failure.
	ErrNotFound = errors.New("no matching row")

	// ErrUnavailable means the store could not be opened or the query
	// itself failed. Callers must not confuse it with ErrNotFound.
	ErrUnavailable = errors.New("score store unavailable")
)

// Store manages a DuckDB connection to one score database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the on-disk location the store was opened at.
func (s *Store) Path() string {
	return s.path
}

// RowCount returns the number of rows in a table.
func (s *Store) RowCount(table string) (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + QuoteIdent(table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s rows: %w", table, err)
	}
	return count, nil
}

// QuoteIdent double-quotes an identifier so table and column names taken
// verbatim from the upstream score files (e.g. "#GERP++", "#CpG?") stay
// usable in SQL.
func QuoteIdent(name string) string {
	out := make([]byte, 0, len(name)+2)
	out = append(out, '"')
	for i := 0; i < len(name); i++ {
		if name[i] == '"' {
			out = append(out, '"', '"')
			continue
		}
		out = append(out, name[i])
	}
	return string(append(out, '"'))
}
