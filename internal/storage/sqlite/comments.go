package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/beadkeep/beads/internal/types"
)

func addComment(ctx context.Context, ex executor, issueID, author, text string) (*types.Comment, error) {
	now := time.Now().UTC()
	res, err := ex.ExecContext(ctx,
		"INSERT INTO comments (issue_id, author, text, created_at) VALUES (?, ?, ?, ?)",
		issueID, author, text, now)
	if err != nil {
		return nil, fmt.Errorf("add comment on %s: %w", issueID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := recordEvent(ctx, ex, issueID, types.EventCommented, author, "", text); err != nil {
		return nil, err
	}
	if err := markDirty(ctx, ex, issueID); err != nil {
		return nil, err
	}

	return &types.Comment{ID: id, IssueID: issueID, Author: author, Text: text, CreatedAt: now}, nil
}

func getComments(ctx context.Context, ex executor, issueID string) ([]*types.Comment, error) {
	rows, err := ex.QueryContext(ctx,
		"SELECT id, author, text, created_at FROM comments WHERE issue_id = ? ORDER BY created_at", issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*types.Comment
	for rows.Next() {
		c := &types.Comment{IssueID: issueID}
		if err := rows.Scan(&c.ID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
