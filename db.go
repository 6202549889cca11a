// db.go
//
// Database helpers for the mystery game server.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the schema (idempotent CREATE IF NOT EXISTS).
//
// SQLite holds the long-lived relational data (users, solve history);
// per-instance game state lives in the KV store.

package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// openDB opens (and creates if missing) a SQLite database file.
// Ensures the parent directory exists for relative DSNs (e.g. ./data/app.db),
// configures busy timeout and WAL journaling, and enforces foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the schema. Statements are idempotent so this is safe to
// run on every startup.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE COLLATE NOCASE,
			password_hash TEXT NOT NULL,
			created_at    TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS solves (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			instance_id TEXT NOT NULL,
			username    TEXT NOT NULL,
			solved_on   TEXT NOT NULL,
			attempts    INTEGER NOT NULL,
			hints_used  INTEGER NOT NULL,
			solved_at   TEXT NOT NULL,
			UNIQUE(instance_id, username, solved_on)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_solves_username ON solves(username);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
