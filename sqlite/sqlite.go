// Package sqlite exports extracted documentation to a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const memoryPath = ":memory:"

const schema = `
	CREATE TABLE IF NOT EXISTS exports (
		id TEXT PRIMARY KEY,
		package_url TEXT NOT NULL,
		extracted_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sections (
		id TEXT PRIMARY KEY,
		export_id TEXT NOT NULL REFERENCES exports(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL,
		text TEXT NOT NULL DEFAULT '',
		content_hash TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		UNIQUE (export_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_exports_package_url ON exports(package_url);
`

// DB is an export database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a DB for the file at path, or an in-memory database for
// ":memory:".
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas returns the connection settings for the database. WAL is not
// available for in-memory databases.
func (db *DB) pragmas() []string {
	p := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	if db.path != memoryPath {
		p = append(p, "PRAGMA journal_mode = WAL")
	}
	return p
}

// Open connects to the database and creates the export tables.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", db.path, err)
	}

	// One writer at a time; a single connection also keeps an in-memory
	// database alive across statements.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("connect %s: %w", db.path, err)
	}

	for _, p := range db.pragmas() {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return fmt.Errorf("%s: %w", p, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	db.db = conn
	return nil
}

// Close closes the database.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
