package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search on research topics, which Ent
// schema definitions cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_research_tasks_topic_gin
		ON research_tasks USING gin(to_tsvector('english', research_topic))`)
	if err != nil {
		return fmt.Errorf("failed to create research_topic GIN index: %w", err)
	}

	return nil
}
