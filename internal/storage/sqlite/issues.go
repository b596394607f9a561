package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/beadkeep/beads/internal/storage"
	"github.com/beadkeep/beads/internal/types"
)

const issueColumns = `id, content_hash, title, description, design, acceptance_criteria, notes, spec_id,
	status, priority, issue_type, assignee, owner, estimated_minutes,
	created_at, created_by, updated_at, closed_at, close_reason, closed_by_session,
	due_at, defer_until, deleted_at, deleted_by, delete_reason, original_type,
	external_ref, source_system, metadata, pinned, is_template, ephemeral, crystallizes,
	bonded_from, creator, validations, quality_score,
	await_type, await_id, timeout_ns, waiters, holder,
	hook_bead, role_bead, agent_state, role_type, rig, mol_type, work_type,
	event_kind, actor, target, payload`

func createIssue(ctx context.Context, ex executor, issue *types.Issue, actor string) error {
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now().UTC()
	}
	issue.UpdatedAt = issue.CreatedAt
	if issue.Status == "" {
		issue.Status = types.StatusOpen
	}
	if issue.IssueType == "" {
		issue.IssueType = types.TypeTask
	}
	issue.ContentHash = issue.ComputeContentHash()
	if issue.CreatedBy == "" {
		issue.CreatedBy = actor
	}

	if err := issue.Validate(); err != nil {
		return err
	}

	_, err := ex.ExecContext(ctx, fmt.Sprintf(`INSERT INTO issues (%s) VALUES (%s)`,
		issueColumns, placeholders(53)), issueArgs(issue)...)
	if err != nil {
		return fmt.Errorf("insert issue %s: %w", issue.ID, err)
	}

	for _, l := range issue.Labels {
		if _, err := ex.ExecContext(ctx, "INSERT OR IGNORE INTO labels (issue_id, label) VALUES (?, ?)", issue.ID, l); err != nil {
			return fmt.Errorf("insert label %s on %s: %w", l, issue.ID, err)
		}
	}
	for _, dep := range issue.Dependencies {
		dep.IssueID = issue.ID
		if _, err := ex.ExecContext(ctx,
			"INSERT OR IGNORE INTO dependencies (issue_id, depends_on_id, type, created_at, created_by, metadata, thread_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
			dep.IssueID, dep.DependsOnID, string(dep.Type), dep.CreatedAt, dep.CreatedBy, dep.Metadata, dep.ThreadID); err != nil {
			return fmt.Errorf("insert dependency on %s: %w", issue.ID, err)
		}
	}
	for _, c := range issue.Comments {
		if _, err := ex.ExecContext(ctx,
			"INSERT INTO comments (issue_id, author, text, created_at) VALUES (?, ?, ?, ?)",
			issue.ID, c.Author, c.Text, c.CreatedAt); err != nil {
			return fmt.Errorf("insert comment on %s: %w", issue.ID, err)
		}
	}

	if err := recordEvent(ctx, ex, issue.ID, types.EventCreated, actor, "", ""); err != nil {
		return err
	}
	return markDirty(ctx, ex, issue.ID)
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = "?"
	}
	return strings.Join(ph, ", ")
}

func issueArgs(issue *types.Issue) []any {
	return []any{
		issue.ID, issue.ContentHash, issue.Title, issue.Description, issue.Design, issue.AcceptanceCriteria, issue.Notes, issue.SpecID,
		string(issue.Status), issue.Priority, string(issue.IssueType), issue.Assignee, issue.Owner, issue.EstimatedMinutes,
		issue.CreatedAt, issue.CreatedBy, issue.UpdatedAt, issue.ClosedAt, issue.CloseReason, issue.ClosedBySession,
		issue.DueAt, issue.DeferUntil, issue.DeletedAt, issue.DeletedBy, issue.DeleteReason, issue.OriginalType,
		issue.ExternalRef, issue.SourceSystem, issue.Metadata, boolInt(issue.Pinned), boolInt(issue.IsTemplate), boolInt(issue.Ephemeral), boolInt(issue.Crystallizes),
		encodeBondedFrom(issue.BondedFrom), encodeEntityRef(issue.Creator), encodeValidations(issue.Validations), issue.QualityScore,
		issue.AwaitType, issue.AwaitID, int64(issue.Timeout), encodeStringList(issue.Waiters), issue.Holder,
		issue.HookBead, issue.RoleBead, issue.AgentState, issue.RoleType, issue.Rig, issue.MolType, issue.WorkType,
		issue.EventKind, issue.Actor, issue.Target, issue.Payload,
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func scanIssue(row interface {
	Scan(dest ...any) error
}) (*types.Issue, error) {
	var i types.Issue
	var status, issueType string
	var pinned, isTemplate, ephemeral, crystallizes int
	var bondedFrom, creator, validations, waiters string
	var timeoutNS int64

	err := row.Scan(
		&i.ID, &i.ContentHash, &i.Title, &i.Description, &i.Design, &i.AcceptanceCriteria, &i.Notes, &i.SpecID,
		&status, &i.Priority, &issueType, &i.Assignee, &i.Owner, &i.EstimatedMinutes,
		&i.CreatedAt, &i.CreatedBy, &i.UpdatedAt, &i.ClosedAt, &i.CloseReason, &i.ClosedBySession,
		&i.DueAt, &i.DeferUntil, &i.DeletedAt, &i.DeletedBy, &i.DeleteReason, &i.OriginalType,
		&i.ExternalRef, &i.SourceSystem, &i.Metadata, &pinned, &isTemplate, &ephemeral, &crystallizes,
		&bondedFrom, &creator, &validations, &i.QualityScore,
		&i.AwaitType, &i.AwaitID, &timeoutNS, &waiters, &i.Holder,
		&i.HookBead, &i.RoleBead, &i.AgentState, &i.RoleType, &i.Rig, &i.MolType, &i.WorkType,
		&i.EventKind, &i.Actor, &i.Target, &i.Payload,
	)
	if err != nil {
		return nil, err
	}
	i.Status = types.Status(status)
	i.IssueType = types.IssueType(issueType)
	i.Pinned = pinned != 0
	i.IsTemplate = isTemplate != 0
	i.Ephemeral = ephemeral != 0
	i.Crystallizes = crystallizes != 0
	i.BondedFrom = decodeBondedFrom(bondedFrom)
	i.Creator = decodeEntityRef(creator)
	i.Validations = decodeValidations(validations)
	i.Timeout = time.Duration(timeoutNS)
	i.Waiters = decodeStringList(waiters)
	return &i, nil
}

func getIssue(ctx context.Context, ex executor, id string) (*types.Issue, error) {
	row := ex.QueryRowContext(ctx, fmt.Sprintf("SELECT %s FROM issues WHERE id = ?", issueColumns), id)
	issue, err := scanIssue(row)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	labels, err := getLabels(ctx, ex, id)
	if err != nil {
		return nil, err
	}
	issue.Labels = labels

	deps, err := getDependencyRecords(ctx, ex, id)
	if err != nil {
		return nil, err
	}
	issue.Dependencies = deps

	comments, err := getComments(ctx, ex, id)
	if err != nil {
		return nil, err
	}
	issue.Comments = comments

	return issue, nil
}

func issueExists(ctx context.Context, ex executor, id string) (bool, error) {
	var x int
	err := ex.QueryRowContext(ctx, "SELECT 1 FROM issues WHERE id = ?", id).Scan(&x)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// updateIssue applies a partial patch keyed by JSON field name, always
// bumping updated_at and recomputing content_hash against the post-patch
// state. A status key in updates triggers a status_changed event; any
// other key set triggers a generic updated event.
func updateIssue(ctx context.Context, ex executor, id string, updates map[string]any, actor string) error {
	issue, err := getIssue(ctx, ex, id)
	if err != nil {
		return err
	}

	statusChanged := false
	for k, v := range updates {
		if err := applyUpdate(issue, k, v); err != nil {
			return err
		}
		if k == "status" {
			statusChanged = true
		}
	}
	issue.UpdatedAt = time.Now().UTC()
	issue.ContentHash = issue.ComputeContentHash()
	if err := issue.Validate(); err != nil {
		return err
	}

	_, err = ex.ExecContext(ctx, `UPDATE issues SET
		title=?, description=?, design=?, acceptance_criteria=?, notes=?, spec_id=?,
		status=?, priority=?, issue_type=?, assignee=?, owner=?, estimated_minutes=?,
		updated_at=?, closed_at=?, close_reason=?, closed_by_session=?,
		due_at=?, defer_until=?, external_ref=?, source_system=?, metadata=?,
		pinned=?, is_template=?, content_hash=?
		WHERE id=?`,
		issue.Title, issue.Description, issue.Design, issue.AcceptanceCriteria, issue.Notes, issue.SpecID,
		string(issue.Status), issue.Priority, string(issue.IssueType), issue.Assignee, issue.Owner, issue.EstimatedMinutes,
		issue.UpdatedAt, issue.ClosedAt, issue.CloseReason, issue.ClosedBySession,
		issue.DueAt, issue.DeferUntil, issue.ExternalRef, issue.SourceSystem, issue.Metadata,
		boolInt(issue.Pinned), boolInt(issue.IsTemplate), issue.ContentHash, id)
	if err != nil {
		return fmt.Errorf("update issue %s: %w", id, err)
	}

	evt := types.EventUpdated
	if statusChanged {
		evt = types.EventStatusChanged
	}
	if err := recordEvent(ctx, ex, id, evt, actor, "", ""); err != nil {
		return err
	}
	return markDirty(ctx, ex, id)
}

func applyUpdate(issue *types.Issue, key string, val any) error {
	switch key {
	case "title":
		issue.Title, _ = val.(string)
	case "description":
		issue.Description, _ = val.(string)
	case "design":
		issue.Design, _ = val.(string)
	case "acceptance_criteria":
		issue.AcceptanceCriteria, _ = val.(string)
	case "notes":
		issue.Notes, _ = val.(string)
	case "status":
		s, _ := val.(string)
		issue.Status = types.Status(s)
	case "priority":
		p, _ := val.(int)
		issue.Priority = p
	case "issue_type":
		t, _ := val.(string)
		issue.IssueType = types.IssueType(t)
	case "assignee":
		issue.Assignee, _ = val.(string)
	case "owner":
		issue.Owner, _ = val.(string)
	case "estimated_minutes":
		m, _ := val.(int)
		issue.EstimatedMinutes = &m
	case "due_at":
		t, _ := val.(*time.Time)
		issue.DueAt = t
	case "defer_until":
		t, _ := val.(*time.Time)
		issue.DeferUntil = t
	case "external_ref":
		s, _ := val.(string)
		issue.ExternalRef = &s
	case "pinned":
		b, _ := val.(bool)
		issue.Pinned = b
	case "closed_at":
		t, _ := val.(*time.Time)
		issue.ClosedAt = t
	case "close_reason":
		issue.CloseReason, _ = val.(string)
	default:
		return fmt.Errorf("unknown update field %q", key)
	}
	return nil
}

func closeIssue(ctx context.Context, ex executor, id, reason, actor string) error {
	now := time.Now().UTC()
	return updateIssue(ctx, ex, id, map[string]any{
		"status":      string(types.StatusClosed),
		"closed_at":   &now,
		"close_reason": reason,
	}, actor)
}

func reopenIssue(ctx context.Context, ex executor, id, actor string) error {
	issue, err := getIssue(ctx, ex, id)
	if err != nil {
		return err
	}
	issue.Status = types.StatusOpen
	issue.ClosedAt = nil
	issue.CloseReason = ""
	issue.UpdatedAt = time.Now().UTC()
	issue.ContentHash = issue.ComputeContentHash()

	_, err = ex.ExecContext(ctx,
		"UPDATE issues SET status=?, closed_at=NULL, close_reason='', updated_at=?, content_hash=? WHERE id=?",
		string(issue.Status), issue.UpdatedAt, issue.ContentHash, id)
	if err != nil {
		return fmt.Errorf("reopen issue %s: %w", id, err)
	}
	if err := recordEvent(ctx, ex, id, types.EventReopened, actor, "", ""); err != nil {
		return err
	}
	return markDirty(ctx, ex, id)
}

func deleteIssue(ctx context.Context, ex executor, id string) error {
	_, err := ex.ExecContext(ctx, "DELETE FROM issues WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete issue %s: %w", id, err)
	}
	return nil
}

func resolveID(ctx context.Context, ex executor, partial string) (string, error) {
	exists, err := issueExists(ctx, ex, partial)
	if err != nil {
		return "", err
	}
	if exists {
		return partial, nil
	}

	rows, err := ex.QueryContext(ctx, "SELECT id FROM issues WHERE id LIKE ?", partial+"%")
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return "", storage.ErrNotFound
	}
	if len(ids) > 1 {
		return "", storage.ErrAmbiguousID
	}
	return ids[0], nil
}
