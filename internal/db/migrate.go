package db

import (
	"database/sql"
	"fmt"
)

// migrations are run in order on every open; every statement must be
// re-runnable.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		management_key TEXT NOT NULL,
		calendar       TEXT NOT NULL DEFAULT '{}',
		settings       TEXT,
		employee_tiers TEXT NOT NULL DEFAULT '{}',
		created_at     TEXT NOT NULL,
		last_updated   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS staffing_docs (
		store_id     TEXT NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
		department   TEXT NOT NULL CHECK(department IN ('boh','foh')),
		doc          TEXT NOT NULL,
		last_updated TEXT NOT NULL,
		PRIMARY KEY (store_id, department)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_staffing_docs_store ON staffing_docs(store_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
