package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/types"
)

// hasCycle reports whether adding an edge from -> to would create a cycle,
// by walking existing edges of all dependency types out of to looking for
// a path back to from. A self-edge is always a cycle. The walk is a
// recursive CTE bounded at depth 100, matching the reference oracle.
func hasCycle(ctx context.Context, ex executor, from, to string) (bool, error) {
	if from == to {
		return true, nil
	}

	rows, err := ex.QueryContext(ctx, `
		WITH RECURSIVE reachable(id, depth) AS (
			SELECT depends_on_id, 1 FROM dependencies WHERE issue_id = ?
			UNION
			SELECT d.depends_on_id, r.depth + 1
			FROM dependencies d
			JOIN reachable r ON d.issue_id = r.id
			WHERE r.depth < 100
		)
		SELECT id FROM reachable WHERE id = ?`, to, from)
	if err != nil {
		return false, fmt.Errorf("cycle check %s -> %s: %w", from, to, err)
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		found = true
	}
	return found, rows.Err()
}

func addDependency(ctx context.Context, ex executor, dep *types.Dependency, actor string) error {
	cyc, err := hasCycle(ctx, ex, dep.IssueID, dep.DependsOnID)
	if err != nil {
		return err
	}
	if cyc {
		return storage.ErrCycle
	}

	if dep.CreatedAt.IsZero() {
		dep.CreatedAt = time.Now().UTC()
	}
	if dep.CreatedBy == "" {
		dep.CreatedBy = actor
	}

	_, err = ex.ExecContext(ctx,
		"INSERT OR IGNORE INTO dependencies (issue_id, depends_on_id, type, created_at, created_by, metadata, thread_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		dep.IssueID, dep.DependsOnID, string(dep.Type), dep.CreatedAt, dep.CreatedBy, dep.Metadata, dep.ThreadID)
	if err != nil {
		return fmt.Errorf("add dependency %s -> %s: %w", dep.IssueID, dep.DependsOnID, err)
	}

	if err := recordEvent(ctx, ex, dep.IssueID, types.EventDependencyAdded, actor, "", dep.DependsOnID); err != nil {
		return err
	}
	return markDirty(ctx, ex, dep.IssueID)
}

func removeDependency(ctx context.Context, ex executor, issueID, dependsOnID, actor string) error {
	_, err := ex.ExecContext(ctx, "DELETE FROM dependencies WHERE issue_id = ? AND depends_on_id = ?", issueID, dependsOnID)
	if err != nil {
		return fmt.Errorf("remove dependency %s -> %s: %w", issueID, dependsOnID, err)
	}
	if err := recordEvent(ctx, ex, issueID, types.EventDependencyRemoved, actor, dependsOnID, ""); err != nil {
		return err
	}
	return markDirty(ctx, ex, issueID)
}

func getDependencyRecords(ctx context.Context, ex executor, issueID string) ([]*types.Dependency, error) {
	rows, err := ex.QueryContext(ctx,
		"SELECT issue_id, depends_on_id, type, created_at, created_by, metadata, thread_id FROM dependencies WHERE issue_id = ? ORDER BY created_at",
		issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deps []*types.Dependency
	for rows.Next() {
		var d types.Dependency
		var depType string
		if err := rows.Scan(&d.IssueID, &d.DependsOnID, &depType, &d.CreatedAt, &d.CreatedBy, &d.Metadata, &d.ThreadID); err != nil {
			return nil, err
		}
		d.Type = types.DependencyType(depType)
		deps = append(deps, &d)
	}
	return deps, rows.Err()
}
