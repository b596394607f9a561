package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/beadkeep/beads/internal/types"
)

var sortColumns = map[types.SortKey]string{
	types.SortByCreated:  "created_at",
	types.SortByUpdated:  "updated_at",
	types.SortByPriority: "priority",
	types.SortByStatus:   "status",
	types.SortByTitle:    "title",
	types.SortByID:       "id",
	types.SortByType:     "issue_type",
}

// whereBuilder accumulates AND-combined SQL predicates and their bound
// args, so list/search/ready/blocked can share one filter-to-SQL path.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, args ...any) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(w.clauses, " AND ")
}

func inClause(column string, n int) string {
	return column + " IN (" + strings.TrimSuffix(strings.Repeat("?,", n), ",") + ")"
}

func appendFilter(w *whereBuilder, filter types.IssueFilter) {
	if len(filter.Status) > 0 {
		args := make([]any, len(filter.Status))
		for i, s := range filter.Status {
			args[i] = string(s)
		}
		w.add(inClause("status", len(args)), args...)
	}
	if len(filter.ExcludeStatus) > 0 {
		args := make([]any, len(filter.ExcludeStatus))
		for i, s := range filter.ExcludeStatus {
			args[i] = string(s)
		}
		w.add("status NOT IN ("+strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")+")", args...)
	}
	if !filter.IncludeTombstone && len(filter.Status) == 0 {
		w.add("status != 'tombstone'")
	}
	if filter.Priority != nil {
		w.add("priority = ?", *filter.Priority)
	}
	if filter.PriorityMin != nil {
		w.add("priority >= ?", *filter.PriorityMin)
	}
	if filter.PriorityMax != nil {
		w.add("priority <= ?", *filter.PriorityMax)
	}
	if len(filter.Type) > 0 {
		args := make([]any, len(filter.Type))
		for i, t := range filter.Type {
			args[i] = string(t)
		}
		w.add(inClause("issue_type", len(args)), args...)
	}
	if len(filter.ExcludeType) > 0 {
		args := make([]any, len(filter.ExcludeType))
		for i, t := range filter.ExcludeType {
			args[i] = string(t)
		}
		w.add("issue_type NOT IN ("+strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")+")", args...)
	}
	if filter.NoAssignee {
		w.add("assignee = ''")
	} else if filter.Assignee != "" {
		w.add("assignee = ?", filter.Assignee)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		w.add("(title LIKE ? OR description LIKE ? OR notes LIKE ?)", like, like, like)
	}
	if len(filter.IDs) > 0 {
		args := make([]any, len(filter.IDs))
		for i, id := range filter.IDs {
			args[i] = id
		}
		w.add(inClause("id", len(args)), args...)
	}
	if filter.IDPrefix != "" {
		w.add("id LIKE ?", filter.IDPrefix+"%")
	}
	if filter.ParentID != "" {
		w.add("id LIKE ? ESCAPE '\\'", filter.ParentID+".%")
	}
	if filter.CreatedAfter != nil {
		w.add("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		w.add("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.UpdatedAfter != nil {
		w.add("updated_at >= ?", *filter.UpdatedAfter)
	}
	if filter.UpdatedBefore != nil {
		w.add("updated_at <= ?", *filter.UpdatedBefore)
	}
	if filter.Ephemeral != nil {
		w.add("ephemeral = ?", boolInt(*filter.Ephemeral))
	}
	if filter.Pinned != nil {
		w.add("pinned = ?", boolInt(*filter.Pinned))
	}
	if filter.IsTemplate != nil {
		w.add("is_template = ?", boolInt(*filter.IsTemplate))
	}
	if filter.Overdue {
		w.add("due_at IS NOT NULL AND due_at < ? AND status NOT IN ('closed', 'tombstone')", time.Now().UTC())
	}
}

func listIssuesQuery(ctx context.Context, ex executor, filter types.IssueFilter) ([]*types.Issue, error) {
	w := &whereBuilder{}
	appendFilter(w, filter)

	// Label filters require a join against the labels table; AND semantics
	// need one EXISTS per required label, OR semantics need one EXISTS
	// covering the whole set.
	for _, l := range filter.Labels {
		w.add("EXISTS (SELECT 1 FROM labels WHERE labels.issue_id = issues.id AND labels.label = ?)", l)
	}
	if len(filter.LabelsAny) > 0 {
		args := make([]any, len(filter.LabelsAny))
		for i, l := range filter.LabelsAny {
			args[i] = l
		}
		w.add("EXISTS (SELECT 1 FROM labels WHERE labels.issue_id = issues.id AND "+inClause("labels.label", len(args))+")", args...)
	}

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	dir := "ASC"
	if filter.Reverse {
		dir = "DESC"
	}
	query := fmt.Sprintf("SELECT %s FROM issues WHERE 1=1%s ORDER BY %s %s", issueColumns, w.sql(), sortCol, dir)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := ex.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	var issues []*types.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, issue := range issues {
		if err := hydrate(ctx, ex, issue); err != nil {
			return nil, err
		}
	}
	return issues, nil
}

func hydrate(ctx context.Context, ex executor, issue *types.Issue) error {
	labels, err := getLabels(ctx, ex, issue.ID)
	if err != nil {
		return err
	}
	issue.Labels = labels

	deps, err := getDependencyRecords(ctx, ex, issue.ID)
	if err != nil {
		return err
	}
	issue.Dependencies = deps
	return nil
}

func searchIssuesQuery(ctx context.Context, ex executor, text string, filter types.IssueFilter) ([]*types.Issue, error) {
	filter.Search = text
	return listIssuesQuery(ctx, ex, filter)
}

func getReadyWork(ctx context.Context, ex executor, filter types.WorkFilter) ([]*types.Issue, error) {
	w := &whereBuilder{}
	w.add("(defer_until IS NULL OR defer_until <= ?)", time.Now().UTC())
	if filter.Type != "" {
		w.add("issue_type = ?", string(filter.Type))
	}
	if filter.Priority != nil {
		w.add("priority = ?", *filter.Priority)
	}
	if filter.Unassigned {
		w.add("assignee = ''")
	} else if filter.Assignee != "" {
		w.add("assignee = ?", filter.Assignee)
	}
	for _, l := range filter.Labels {
		w.add("EXISTS (SELECT 1 FROM labels WHERE labels.issue_id = ready_issues.id AND labels.label = ?)", l)
	}

	query := fmt.Sprintf("SELECT %s FROM ready_issues WHERE 1=1%s ORDER BY priority ASC, created_at ASC", issueColumns, w.sql())
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := ex.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("ready work: %w", err)
	}
	defer rows.Close()

	var issues []*types.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, issue := range issues {
		if err := hydrate(ctx, ex, issue); err != nil {
			return nil, err
		}
	}
	return issues, nil
}

func getBlockedIssues(ctx context.Context, ex executor, filter types.WorkFilter) ([]*types.BlockedIssue, error) {
	w := &whereBuilder{}
	if filter.Type != "" {
		w.add("issue_type = ?", string(filter.Type))
	}
	if filter.Priority != nil {
		w.add("priority = ?", *filter.Priority)
	}
	if filter.Assignee != "" {
		w.add("assignee = ?", filter.Assignee)
	}

	query := fmt.Sprintf("SELECT %s FROM blocked_issues WHERE 1=1%s ORDER BY priority ASC, created_at ASC", issueColumns, w.sql())
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := ex.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("blocked issues: %w", err)
	}
	defer rows.Close()

	var blocked []*types.BlockedIssue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		if err := hydrate(ctx, ex, issue); err != nil {
			return nil, err
		}

		blockers, err := unresolvedBlockers(ctx, ex, issue.ID)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, &types.BlockedIssue{Issue: issue, BlockedBy: blockers})
	}
	return blocked, rows.Err()
}

func unresolvedBlockers(ctx context.Context, ex executor, issueID string) ([]string, error) {
	rows, err := ex.QueryContext(ctx, `
		SELECT d.depends_on_id
		FROM dependencies d
		JOIN issues blocker ON d.depends_on_id = blocker.id
		WHERE d.issue_id = ?
		  AND d.type IN ('blocks', 'parent-child', 'conditional-blocks', 'waits-for')
		  AND blocker.status IN ('open', 'in_progress', 'blocked', 'deferred', 'hooked')`, issueID)
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

func getStatistics(ctx context.Context, ex executor) (*types.Statistics, error) {
	stats := &types.Statistics{
		ByStatus:   map[types.Status]int{},
		ByType:     map[types.IssueType]int{},
		ByPriority: map[int]int{},
	}

	rows, err := ex.QueryContext(ctx, "SELECT status, COUNT(*) FROM issues WHERE status != 'tombstone' GROUP BY status")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ByStatus[types.Status(status)] = n
		stats.Total += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := ex.QueryRowContext(ctx, "SELECT COUNT(*) FROM issues WHERE status = 'tombstone'").Scan(&stats.Tombstones); err != nil {
		return nil, err
	}

	rows, err = ex.QueryContext(ctx, "SELECT issue_type, COUNT(*) FROM issues WHERE status != 'tombstone' GROUP BY issue_type")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ByType[types.IssueType(t)] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = ex.QueryContext(ctx, "SELECT priority, COUNT(*) FROM issues WHERE status != 'tombstone' GROUP BY priority")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p, n int
		if err := rows.Scan(&p, &n); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ByPriority[p] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ready, err := getReadyWork(ctx, ex, types.WorkFilter{})
	if err != nil {
		return nil, err
	}
	stats.Ready = len(ready)

	return stats, nil
}
