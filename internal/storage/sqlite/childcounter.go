package sqlite

import (
	"context"
	"database/sql"
)

// nextChildNumber reads, increments, and persists the last-issued child
// number for parentID in one call, returning the freshly issued number
// (1 on first use). Callers running inside RunInTransaction get the usual
// BEGIN IMMEDIATE exclusion; a standalone call is still only ever racing
// other single-connection callers since the store caps db.SetMaxOpenConns
// at 1.
func nextChildNumber(ctx context.Context, ex executor, parentID string) (int, error) {
	var last int
	err := ex.QueryRowContext(ctx, "SELECT last_child FROM child_counters WHERE parent_id = ?", parentID).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}

	next := last + 1
	_, err = ex.ExecContext(ctx,
		"INSERT INTO child_counters (parent_id, last_child) VALUES (?, ?) ON CONFLICT(parent_id) DO UPDATE SET last_child = excluded.last_child",
		parentID, next)
	if err != nil {
		return 0, err
	}
	return next, nil
}
