// Package db owns the SQLite database: location, connection pragmas,
// schema migrations, and the transactional boundary.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// envDBPath overrides the database location when set.
const envDBPath = "SHIFTBOARD_DB"

// DefaultPath resolves where the database lives: $SHIFTBOARD_DB when
// set, otherwise ~/.shiftboard/shiftboard.db.
func DefaultPath() (string, error) {
	if path := os.Getenv(envDBPath); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".shiftboard", "shiftboard.db"), nil
}

// OpenDB opens the SQLite database at path, creating the parent
// directory on first use. ":memory:" opens an in-memory database.
// Migrations run on every open.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL lets a second CLI invocation read while one writes, and the
	// busy timeout makes them queue instead of failing with SQLITE_BUSY.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
