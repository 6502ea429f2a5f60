package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/db"
)

// timeLayout is the RFC3339 format for storing times in SQLite
const timeLayout = time.RFC3339

// formatTime returns the current time formatted as RFC3339
func formatTime() string {
	return time.Now().Format(timeLayout)
}

// execOne runs a statement that must touch exactly one row identified by id
func execOne(ctx context.Context, database *db.DB, what, query string, args ...interface{}) error {
	result, err := database.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
