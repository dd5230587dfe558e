package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express in schema definitions.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// An agent holds at most one running task at a time. The dispatcher
	// relies on this when it re-serves an interrupted lease.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS task_agent_id_running
		ON tasks (agent_id)
		WHERE state = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create running-task index: %w", err)
	}

	// Crack ingestion resolves submitted hashes against uncracked items only.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS hash_item_value_uncracked
		ON hash_items (hash_value)
		WHERE plaintext IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create uncracked-hash index: %w", err)
	}

	// One-time registration tokens are looked up on every register call.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS agent_registration_token_pending
		ON agents (registration_token)
		WHERE registration_token IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create registration-token index: %w", err)
	}

	return nil
}
