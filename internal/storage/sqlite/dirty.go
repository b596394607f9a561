package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func markDirty(ctx context.Context, ex executor, issueID string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO dirty_issues (issue_id, marked_at) VALUES (?, CURRENT_TIMESTAMP) ON CONFLICT(issue_id) DO UPDATE SET marked_at = CURRENT_TIMESTAMP",
		issueID)
	if err != nil {
		return fmt.Errorf("mark dirty %s: %w", issueID, err)
	}
	return nil
}

func getDirtyIssues(ctx context.Context, ex executor) ([]string, error) {
	rows, err := ex.QueryContext(ctx, "SELECT issue_id FROM dirty_issues ORDER BY marked_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func clearDirty(ctx context.Context, ex executor, ids []string) error {
	if len(ids) == 0 {
		_, err := ex.ExecContext(ctx, "DELETE FROM dirty_issues")
		return err
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := ex.ExecContext(ctx, fmt.Sprintf("DELETE FROM dirty_issues WHERE issue_id IN (%s)", placeholders), args...)
	return err
}

func getExportHash(ctx context.Context, ex executor, issueID string) (string, error) {
	var hash string
	err := ex.QueryRowContext(ctx, "SELECT content_hash FROM export_hashes WHERE issue_id = ?", issueID).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

func setExportHash(ctx context.Context, ex executor, issueID, contentHash string) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO export_hashes (issue_id, content_hash, exported_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(issue_id) DO UPDATE SET content_hash = excluded.content_hash, exported_at = CURRENT_TIMESTAMP",
		issueID, contentHash)
	return err
}

func clearAllExportHashes(ctx context.Context, ex executor) error {
	_, err := ex.ExecContext(ctx, "DELETE FROM export_hashes")
	return err
}
