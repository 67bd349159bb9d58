// Package sqlite provides SQLite-based storage implementations for rxdocs
// services. Full-text search runs on an FTS5 external-content table kept in
// lockstep with the sections table by triggers, so the index can never drift
// from the primary records.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance
	// and concurrent reads during writes. Not supported for in-memory
	// databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
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

// Stats returns database connection statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

// createSchema creates the database tables, the FTS5 search index, and the
// triggers that keep the index synchronized, if they don't exist.
//
// sections_fts is an external-content table: it stores only the search
// structures and reads field values back from sections by rowid. The
// AFTER INSERT/DELETE/UPDATE triggers run inside the same statement as the
// primary mutation, so a crash can never leave the index and the table
// disagreeing. Sections are immutable in practice (insert and whole-table
// clear are the only write paths), but the update trigger keeps a
// delete-then-reinsert path correct should one be added.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT NOT NULL,
			title TEXT NOT NULL,
			heading TEXT NOT NULL,
			level INTEGER NOT NULL,
			content TEXT NOT NULL,
			content_hash TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			url TEXT NOT NULL
		);

		CREATE VIRTUAL TABLE IF NOT EXISTS sections_fts USING fts5(
			slug,
			title,
			heading,
			content,
			content='sections',
			content_rowid='id'
		);

		CREATE TRIGGER IF NOT EXISTS sections_ai AFTER INSERT ON sections BEGIN
			INSERT INTO sections_fts(rowid, slug, title, heading, content)
			VALUES (new.id, new.slug, new.title, new.heading, new.content);
		END;

		CREATE TRIGGER IF NOT EXISTS sections_ad AFTER DELETE ON sections BEGIN
			INSERT INTO sections_fts(sections_fts, rowid, slug, title, heading, content)
			VALUES ('delete', old.id, old.slug, old.title, old.heading, old.content);
		END;

		CREATE TRIGGER IF NOT EXISTS sections_au AFTER UPDATE ON sections BEGIN
			INSERT INTO sections_fts(sections_fts, rowid, slug, title, heading, content)
			VALUES ('delete', old.id, old.slug, old.title, old.heading, old.content);
			INSERT INTO sections_fts(rowid, slug, title, heading, content)
			VALUES (new.id, new.slug, new.title, new.heading, new.content);
		END;

		CREATE TABLE IF NOT EXISTS components (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			category TEXT,
			description TEXT NOT NULL,
			doc_slug TEXT,
			url TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_sections_slug ON sections(slug);
		CREATE INDEX IF NOT EXISTS idx_components_category ON components(category);
	`

	_, err := db.db.Exec(schema)
	return err
}
