package sqlite

import (
	"context"
	"fmt"

	"github.com/beadkeep/beads/internal/types"
)

func addLabel(ctx context.Context, ex executor, issueID, label, actor string) error {
	_, err := ex.ExecContext(ctx, "INSERT OR IGNORE INTO labels (issue_id, label) VALUES (?, ?)", issueID, label)
	if err != nil {
		return fmt.Errorf("add label %s on %s: %w", label, issueID, err)
	}
	if err := recordEvent(ctx, ex, issueID, types.EventLabelAdded, actor, "", label); err != nil {
		return err
	}
	return markDirty(ctx, ex, issueID)
}

func removeLabel(ctx context.Context, ex executor, issueID, label, actor string) error {
	_, err := ex.ExecContext(ctx, "DELETE FROM labels WHERE issue_id = ? AND label = ?", issueID, label)
	if err != nil {
		return fmt.Errorf("remove label %s on %s: %w", label, issueID, err)
	}
	if err := recordEvent(ctx, ex, issueID, types.EventLabelRemoved, actor, label, ""); err != nil {
		return err
	}
	return markDirty(ctx, ex, issueID)
}

func getLabels(ctx context.Context, ex executor, issueID string) ([]string, error) {
	rows, err := ex.QueryContext(ctx, "SELECT label FROM labels WHERE issue_id = ? ORDER BY label", issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}
