package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema. The store is a single logical record, so the
// schema is one key/value table; the key column exists for forward
// compatibility (e.g. backups written under a different key).
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
