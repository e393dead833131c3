package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on task input and transcript fields.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for task prompt full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_input_gin
		ON tasks USING gin(to_tsvector('english', input))`)
	if err != nil {
		return fmt.Errorf("failed to create task input GIN index: %w", err)
	}

	// GIN index for transcript full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_output_stream_gin
		ON tasks USING gin(to_tsvector('english', COALESCE(output_stream, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create transcript GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one ENABLED webhook config per endpoint path
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS webhookconfig_provider_path_enabled
		ON webhook_configs (provider, path)
		WHERE enabled`)
	if err != nil {
		return fmt.Errorf("failed to create webhook path index: %w", err)
	}

	// At most one assistant message per task within a conversation
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS message_conversation_id_task_id_assistant
		ON messages (conversation_id, task_id)
		WHERE role = 'assistant' AND task_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create assistant message index: %w", err)
	}

	// At most one ACTIVE conversation per flow
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS conversation_flow_id_active
		ON conversations (flow_id)
		WHERE NOT archived`)
	if err != nil {
		return fmt.Errorf("failed to create conversation flow index: %w", err)
	}

	return nil
}
