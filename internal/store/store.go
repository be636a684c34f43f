// Package store implements the embedded data backend on a local SQLite
// database. It owns one physical connection for the lifetime of the
// process and wraps every facade call, reads included, in its own
// transaction.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// SQLiteStore implements core.Store on an embedded SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ core.Store = (*SQLiteStore)(nil)

// New creates a store instance. Call Open before use.
func New(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// NewWithDB wraps an existing database handle. Useful for tests that
// inject a driver.
func NewWithDB(db *sql.DB, logger *slog.Logger) *SQLiteStore {
	s := New(logger)
	s.db = db
	return s
}

// Open opens the database connection. Use ":memory:" for an in-memory
// database. The connection pool is capped at a single connection: the
// store owns exactly one, and overlapping callers serialize on it.
func (s *SQLiteStore) Open(path string) error {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// begin starts the per-call transaction.
func (s *SQLiteStore) begin(ctx context.Context) (*sql.Tx, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// commit commits and surfaces a failed commit as a backend error. The
// deferred rollback in each caller is a no-op after a successful commit.
func commit(tx *sql.Tx, op string) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", op, err)
	}
	return nil
}

// timestampLayout matches the format both backends store timestamps in.
const timestampLayout = "2006-01-02 15:04:05"

func nowTimestamp() string {
	return time.Now().Format(timestampLayout)
}
