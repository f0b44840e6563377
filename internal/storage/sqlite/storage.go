// Package sqlite provides a SQLite-backed history store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
	_ "modernc.org/sqlite"
)

// BackendName identifies this backend in configuration.
const BackendName = "sqlite"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS history (
	position INTEGER PRIMARY KEY,
	url      TEXT NOT NULL
);`

// SQLiteStorage keeps history rows ordered by position.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a SQLite-backed history store at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, ioError("create db directory", dbPath, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, ioError("open db", dbPath, err)
	}
	// one connection keeps :memory: databases alive and serializes writers
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db, path: dbPath}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return ioError("set busy timeout", s.path, err)
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return ioError("create schema", s.path, err)
	}

	return nil
}

// Load returns all history entries in insertion order.
func (s *SQLiteStorage) Load() ([]string, error) {
	rows, err := s.db.QueryContext(context.Background(), "SELECT url FROM history ORDER BY position ASC")
	if err != nil {
		return nil, ioError("load history", s.path, err)
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, ioError("scan history row", s.path, err)
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		return nil, ioError("iterate history", s.path, err)
	}
	return urls, nil
}

// Save replaces every row with urls inside a single transaction.
func (s *SQLiteStorage) Save(urls []string) error {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ioError("begin transaction", s.path, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return ioError("clear history", s.path, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO history (position, url) VALUES (?, ?)")
	if err != nil {
		return ioError("prepare insert", s.path, err)
	}
	defer stmt.Close()

	for i, url := range urls {
		if _, err := stmt.ExecContext(ctx, i, url); err != nil {
			return ioError(fmt.Sprintf("insert history row %d", i), s.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ioError("commit", s.path, err)
	}
	return nil
}

// Count returns the number of stored entries.
func (s *SQLiteStorage) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM history").Scan(&n); err != nil {
		return 0, ioError("count history", s.path, err)
	}
	return n, nil
}

// ioError wraps a database failure as a KindIO store error.
func ioError(op, path string, err error) error {
	return &jsonstore.Error{Kind: jsonstore.KindIO, Op: "sqlite " + op, Path: path, Err: err}
}

// Name returns the backend name.
func (s *SQLiteStorage) Name() string {
	return BackendName
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
