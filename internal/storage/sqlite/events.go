package sqlite

import (
	"context"
	"time"

	"github.com/beadkeep/beads/internal/types"
)

// recordEvent appends a local audit row. Events are never exported to the
// log (internal/export omits them entirely) — they exist only to let a
// command like "bd show" render a history for a single indexed clone.
func recordEvent(ctx context.Context, ex executor, issueID string, eventType types.EventType, actor, oldValue, newValue string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO events (issue_id, event_type, actor, old_value, new_value, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		issueID, string(eventType), actor, oldValue, newValue, time.Now().UTC())
	return err
}

func getEvents(ctx context.Context, ex executor, issueID string, limit int) ([]*types.Event, error) {
	query := "SELECT id, issue_id, event_type, actor, old_value, new_value, comment, created_at FROM events WHERE issue_id = ? ORDER BY created_at DESC"
	args := []any{issueID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*types.Event
	for rows.Next() {
		var e types.Event
		var eventType string
		if err := rows.Scan(&e.ID, &e.IssueID, &eventType, &e.Actor, &e.OldValue, &e.NewValue, &e.Comment, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.EventType = types.EventType(eventType)
		events = append(events, &e)
	}
	return events, rows.Err()
}
